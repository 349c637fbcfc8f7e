package entities

// StaffMember is a manager account of the order platform.
type StaffMember struct {
	ID        string
	FirstName string
	LastName  string
}

// Roster is the staff list fetched once per run.
// Err is set when the directory could not be read.
type Roster struct {
	Members []StaffMember
	Err     error
}

// Find returns the member with exactly matching first and last name.
func (r Roster) Find(firstName, lastName string) (StaffMember, bool) {
	for _, m := range r.Members {
		if m.FirstName == firstName && m.LastName == lastName {
			return m, true
		}
	}
	return StaffMember{}, false
}
