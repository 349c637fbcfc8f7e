package abcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Loandr1324/InsertManagerInOrder/internal/entities"
)

const (
	ordersListEndpoint = "orders/list"
	orderEditEndpoint  = "order"
	ordersPageSize     = 500
)

// ListOrders returns orders created at or after windowStart, following pagination.
func (c *Client) ListOrders(ctx context.Context, windowStart string) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)
	for skip := 0; ; skip += ordersPageSize {
		params := url.Values{
			"dateCreatedStart": {windowStart},
			"format":           {"short"},
			"limit":            {strconv.Itoa(ordersPageSize)},
			"skip":             {strconv.Itoa(skip)},
		}

		var raw json.RawMessage
		if err := c.get(ctx, ordersListEndpoint, params, &raw); err != nil {
			c.log.Errorw("failed to list orders", "error", err, "window_start", windowStart, "skip", skip)
			return nil, err
		}
		items, err := decodeOrders(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", entities.ErrAPIFailure, ordersListEndpoint, err)
		}

		for _, it := range items {
			orders = append(orders, it.toEntity())
		}
		if len(items) < ordersPageSize {
			break
		}
	}

	c.log.Infow("orders fetched", "window_start", windowStart, "count", len(orders))
	return orders, nil
}

// UpdateOrder sets the order manager and optionally deletes a note in one request.
func (c *Client) UpdateOrder(ctx context.Context, number, managerID string, noteID *string) error {
	form := url.Values{
		"number":    {number},
		"managerId": {managerID},
	}
	if noteID != nil {
		form.Set("delNote", *noteID)
	}

	if err := c.post(ctx, orderEditEndpoint, form, nil); err != nil {
		c.log.Errorw("failed to update order", "error", err, "number", number, "manager_id", managerID)
		return err
	}
	c.log.Infow("order updated", "number", number, "manager_id", managerID, "note_removed", noteID != nil)
	return nil
}

// decodeOrders accepts both a bare array and a {"count", "items"} page.
func decodeOrders(raw json.RawMessage) ([]orderDTO, error) {
	if isObject(raw) {
		var page ordersPage
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, err
		}
		return page.Items, nil
	}
	var items []orderDTO
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", errUnexpectedShape, err)
	}
	return items, nil
}
