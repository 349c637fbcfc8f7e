package abcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

const staffEndpoint = "staff"

// ListStaff returns the current manager roster.
func (c *Client) ListStaff(ctx context.Context) ([]entities.StaffMember, error) {
	var raw json.RawMessage
	if err := c.get(ctx, staffEndpoint, nil, &raw); err != nil {
		c.log.Errorw("failed to list staff", "error", err)
		return nil, err
	}

	var items []staffDTO
	if isObject(raw) {
		var page struct {
			Items []staffDTO `json:"items"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", entities.ErrAPIFailure, staffEndpoint, err)
		}
		items = page.Items
	} else if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", entities.ErrAPIFailure, staffEndpoint, err)
	}

	staff := make([]entities.StaffMember, 0, len(items))
	for _, s := range items {
		staff = append(staff, s.toEntity())
	}
	c.log.Debugw("staff fetched", "count", len(staff))
	return staff, nil
}
