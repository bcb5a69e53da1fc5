package storeclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
)

// ListGuests returns every guest.
func (c *Client) ListGuests(ctx context.Context) ([]guest.Guest, error) {
	var out []guest.Guest
	if err := c.do(ctx, "load guests", http.MethodGet, "/guests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateGuest registers a new guest.
func (c *Client) CreateGuest(ctx context.Context, in guest.Input) (guest.Guest, error) {
	var out guest.Guest
	err := c.do(ctx, "create guest", http.MethodPost, "/guests", in, &out)
	return out, err
}

// UpdateGuest replaces the editable fields of a guest.
func (c *Client) UpdateGuest(ctx context.Context, id int64, in guest.Input) (guest.Guest, error) {
	var out guest.Guest
	err := c.do(ctx, "update guest", http.MethodPut, fmt.Sprintf("/guests/%d", id), in, &out)
	return out, err
}

// DeleteGuest removes a guest.
func (c *Client) DeleteGuest(ctx context.Context, id int64) error {
	return c.do(ctx, "delete guest", http.MethodDelete, fmt.Sprintf("/guests/%d", id), nil, nil)
}
