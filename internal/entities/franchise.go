package entities

// DefaultFranchiseSheetIndex is the position of the "franchises" worksheet.
const DefaultFranchiseSheetIndex = 6

// FranchiseMap maps a franchise customer code to its manager id.
type FranchiseMap map[string]string

// Lookup returns the manager id assigned to a customer code.
func (m FranchiseMap) Lookup(customerCode string) (string, bool) {
	id, ok := m[customerCode]
	return id, ok
}
