package entities

import "time"

// Group tells which assignment rule produced a decision.
type Group string

const (
	// GroupStandard covers regular customers.
	GroupStandard Group = "standard"
	// GroupFranchise covers customers listed in the franchise directory.
	GroupFranchise Group = "franchise"
)

// OutcomeKind enumerates per-order classification results.
type OutcomeKind string

const (
	// OutcomeAssign means a decision was produced.
	OutcomeAssign OutcomeKind = "assign"
	// OutcomeSkip means the order is intentionally left alone.
	OutcomeSkip OutcomeKind = "skip"
	// OutcomeFail means the order needs manual attention.
	OutcomeFail OutcomeKind = "fail"
)

// SkipEmployeeOrder is the reason recorded for internal customer orders.
const SkipEmployeeOrder = "employee_order"

// Decision is the change to apply to one order.
type Decision struct {
	ManagerID      string
	NoteIDToRemove *string
}

// RemovesNote reports whether the decision deletes a note.
func (d Decision) RemovesNote() bool {
	return d.NoteIDToRemove != nil
}

// Assignment pairs an order with its decision.
type Assignment struct {
	Order    Order
	Decision Decision
	Group    Group
}

// Outcome is the tagged result of routing a single order.
type Outcome struct {
	Kind     OutcomeKind
	Group    Group
	Order    Order
	Decision Decision
	Reason   string
	Author   string
	Err      error
}

// Classification is the classifier output for one run.
type Classification struct {
	Standard  []Assignment
	Franchise []Assignment
	Skipped   []Outcome
	Failed    []Outcome
}

// Assignments returns the standard group followed by the franchise group.
func (c Classification) Assignments() []Assignment {
	res := make([]Assignment, 0, len(c.Standard)+len(c.Franchise))
	res = append(res, c.Standard...)
	return append(res, c.Franchise...)
}

// AppliedAssignment records a mutation sent (or planned in dry run) for an order.
type AppliedAssignment struct {
	OrderNumber    string  `json:"order_number"`
	CustomerCode   string  `json:"customer_code"`
	Group          Group   `json:"group"`
	ManagerID      string  `json:"manager_id"`
	NoteIDToRemove *string `json:"note_id_to_remove,omitempty"`
}

// OrderFailure describes an order that could not be processed.
type OrderFailure struct {
	OrderNumber  string `json:"order_number"`
	CustomerCode string `json:"customer_code"`
	CustomerName string `json:"customer_name"`
	Author       string `json:"note_author,omitempty"`
	Error        string `json:"error"`
}

// OrderSkip describes an order intentionally left alone.
type OrderSkip struct {
	OrderNumber  string `json:"order_number"`
	CustomerName string `json:"customer_name"`
	Reason       string `json:"reason"`
}

// RunReport summarises one run. It lives in memory only.
type RunReport struct {
	StartedAt   time.Time           `json:"started_at"`
	FinishedAt  time.Time           `json:"finished_at"`
	WindowStart string              `json:"window_start"`
	DryRun      bool                `json:"dry_run"`
	Fetched     int                 `json:"fetched"`
	Qualifying  int                 `json:"qualifying"`
	Applied     []AppliedAssignment `json:"applied"`
	Skipped     []OrderSkip         `json:"skipped"`
	Failed      []OrderFailure      `json:"failed"`
}
