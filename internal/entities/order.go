// Package entities contains core business entities.
package entities

import "time"

const (
	// UnassignedManagerID marks an order that still needs a manager.
	UnassignedManagerID = "0"
	// DefaultManagerID is the "manager not determined" staff account.
	DefaultManagerID = "25191325"
	// EmployeeNameMarker marks internal (employee-originated) customers.
	EmployeeNameMarker = "Сотрудник"
	// OriginalOrderMarker is the note text that points to the order's author.
	OriginalOrderMarker = "Номер исходного заказа"
	// LookbackWindow is how far back each run looks for created orders.
	LookbackWindow = 72 * time.Hour
	// WindowLayout is the order platform timestamp format.
	WindowLayout = "2006-01-02 15:04:05"
)

// Note is a free-text annotation attached to an order.
type Note struct {
	ID     string
	Author string
	Text   string
}

// Order is a read-only snapshot of a platform order.
type Order struct {
	Number       string
	ManagerID    string
	CustomerCode string
	CustomerName string
	Notes        []Note
}

// Unassigned reports whether the order still carries the unassigned sentinel.
func (o Order) Unassigned() bool {
	return o.ManagerID == UnassignedManagerID
}

// FirstNote returns the earliest note of the order.
func (o Order) FirstNote() (Note, bool) {
	if len(o.Notes) == 0 {
		return Note{}, false
	}
	return o.Notes[0], true
}
