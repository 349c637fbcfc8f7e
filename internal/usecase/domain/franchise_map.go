package domain

import (
	"strings"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

const (
	franchiseCodeColumn    = 0
	franchiseManagerColumn = 2
)

// BuildFranchiseMap turns worksheet rows into a customer code to manager id map.
// Row 0 is a header. Rows that are too short or blank in either column are ignored;
// a repeated code keeps the value of its last row.
func BuildFranchiseMap(rows [][]string) entities.FranchiseMap {
	res := make(entities.FranchiseMap)
	if len(rows) <= 1 {
		return res
	}
	for _, row := range rows[1:] {
		if len(row) <= franchiseManagerColumn {
			continue
		}
		code := strings.TrimSpace(row[franchiseCodeColumn])
		managerID := strings.TrimSpace(row[franchiseManagerColumn])
		if code == "" || managerID == "" {
			continue
		}
		res[code] = managerID
	}
	return res
}

// MergeFranchises returns base extended by overrides; overrides win on conflicts.
func MergeFranchises(base, overrides entities.FranchiseMap) entities.FranchiseMap {
	res := make(entities.FranchiseMap, len(base)+len(overrides))
	for k, v := range base {
		res[k] = v
	}
	for k, v := range overrides {
		res[k] = v
	}
	return res
}
