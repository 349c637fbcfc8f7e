// Package domain contains the manager assignment rules and the run orchestrator.
package domain

import (
	"fmt"
	"strings"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

// Rules parameterises the classifier.
type Rules struct {
	DefaultManagerID    string
	EmployeeNameMarker  string
	OriginalOrderMarker string
	// DefaultOnMissingNote routes standard orders without notes to the default manager.
	DefaultOnMissingNote bool
}

// DefaultRules returns the production rule set.
func DefaultRules() Rules {
	return Rules{
		DefaultManagerID:    entities.DefaultManagerID,
		EmployeeNameMarker:  entities.EmployeeNameMarker,
		OriginalOrderMarker: entities.OriginalOrderMarker,
	}
}

// Classify routes every unassigned order to exactly one of: franchise assignment,
// standard assignment, skip, or failure. It performs no I/O.
func Classify(orders []entities.Order, roster entities.Roster, franchises entities.FranchiseMap, rules Rules) entities.Classification {
	var res entities.Classification

	for _, order := range orders {
		if !order.Unassigned() {
			continue
		}

		if managerID, ok := franchises.Lookup(order.CustomerCode); ok {
			res.Franchise = append(res.Franchise, entities.Assignment{
				Order:    order,
				Decision: entities.Decision{ManagerID: managerID},
				Group:    entities.GroupFranchise,
			})
			continue
		}

		if strings.Contains(order.CustomerName, rules.EmployeeNameMarker) {
			res.Skipped = append(res.Skipped, entities.Outcome{
				Kind:   entities.OutcomeSkip,
				Order:  order,
				Reason: entities.SkipEmployeeOrder,
			})
			continue
		}

		out := routeStandard(order, roster, rules)
		if out.Kind == entities.OutcomeFail {
			res.Failed = append(res.Failed, out)
			continue
		}
		res.Standard = append(res.Standard, entities.Assignment{
			Order:    order,
			Decision: out.Decision,
			Group:    entities.GroupStandard,
		})
	}

	return res
}

func routeStandard(order entities.Order, roster entities.Roster, rules Rules) entities.Outcome {
	note, ok := order.FirstNote()
	if !ok {
		if rules.DefaultOnMissingNote {
			return assign(order, entities.Decision{ManagerID: rules.DefaultManagerID})
		}
		return fail(order, "", entities.ErrMissingNote)
	}

	if !strings.Contains(note.Text, rules.OriginalOrderMarker) {
		return assign(order, entities.Decision{ManagerID: rules.DefaultManagerID})
	}

	if roster.Err != nil {
		return fail(order, note.Author, fmt.Errorf("%w: %v", entities.ErrStaffUnavailable, roster.Err))
	}

	firstName, lastName, ok := splitAuthor(note.Author)
	if !ok {
		return fail(order, note.Author, fmt.Errorf("%w: author %q is not \"First Last\"", entities.ErrManagerResolution, note.Author))
	}

	manager, ok := roster.Find(firstName, lastName)
	if !ok {
		return fail(order, note.Author, fmt.Errorf("%w: no staff member named %q", entities.ErrManagerResolution, note.Author))
	}

	noteID := note.ID
	return assign(order, entities.Decision{ManagerID: manager.ID, NoteIDToRemove: &noteID})
}

// splitAuthor splits "First Last" on the first space.
func splitAuthor(author string) (string, string, bool) {
	first, last, found := strings.Cut(strings.TrimSpace(author), " ")
	if !found || first == "" || last == "" {
		return "", "", false
	}
	return first, last, true
}

func assign(order entities.Order, d entities.Decision) entities.Outcome {
	return entities.Outcome{
		Kind:     entities.OutcomeAssign,
		Group:    entities.GroupStandard,
		Order:    order,
		Decision: d,
	}
}

func fail(order entities.Order, author string, err error) entities.Outcome {
	return entities.Outcome{
		Kind:   entities.OutcomeFail,
		Group:  entities.GroupStandard,
		Order:  order,
		Author: author,
		Err:    err,
	}
}
