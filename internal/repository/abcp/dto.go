package abcp

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

// flexString accepts both JSON strings and numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }

// flexInt accepts both JSON numbers and numeric strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

type errorResponse struct {
	Code    flexInt `json:"errorCode"`
	Message string  `json:"errorMessage"`
}

type noteDTO struct {
	ID     flexString `json:"id"`
	Author string     `json:"author"`
	Value  string     `json:"value"`
}

type orderDTO struct {
	Number    flexString `json:"number"`
	ManagerID flexString `json:"managerId"`
	UserCode  flexString `json:"userCode"`
	UserName  string     `json:"userName"`
	Notes     []noteDTO  `json:"notes"`
}

type ordersPage struct {
	Count flexInt    `json:"count"`
	Items []orderDTO `json:"items"`
}

type staffDTO struct {
	ID        flexString `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
}

func (o orderDTO) toEntity() entities.Order {
	notes := make([]entities.Note, 0, len(o.Notes))
	for _, n := range o.Notes {
		notes = append(notes, entities.Note{ID: n.ID.String(), Author: n.Author, Text: n.Value})
	}
	return entities.Order{
		Number:       o.Number.String(),
		ManagerID:    o.ManagerID.String(),
		CustomerCode: o.UserCode.String(),
		CustomerName: o.UserName,
		Notes:        notes,
	}
}

func (s staffDTO) toEntity() entities.StaffMember {
	return entities.StaffMember{ID: s.ID.String(), FirstName: s.FirstName, LastName: s.LastName}
}
