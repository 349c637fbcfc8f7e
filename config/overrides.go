package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"

	"gopkg.in/yaml.v3"
)

// LoadFranchiseOverrides reads the static customer code to manager id table.
// An empty path yields an empty table. Both keys and values may be written as
// numbers in the file.
func LoadFranchiseOverrides(path string) (entities.FranchiseMap, error) {
	res := make(entities.FranchiseMap)
	if path == "" {
		return res, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read franchise overrides: %v", entities.ErrConfiguration, err)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse franchise overrides %s: %v", entities.ErrConfiguration, path, err)
	}

	for code, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: franchise override %q must be a scalar", entities.ErrConfiguration, code)
		}
		code = strings.TrimSpace(code)
		managerID := strings.TrimSpace(node.Value)
		if code == "" || managerID == "" {
			return nil, fmt.Errorf("%w: franchise override %q has an empty value", entities.ErrConfiguration, code)
		}
		res[code] = managerID
	}
	return res, nil
}
