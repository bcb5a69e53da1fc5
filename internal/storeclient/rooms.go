package storeclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// ListRooms returns every room.
func (c *Client) ListRooms(ctx context.Context) ([]room.Room, error) {
	var out []room.Room
	if err := c.do(ctx, "load rooms", http.MethodGet, "/rooms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRoom adds a room.
func (c *Client) CreateRoom(ctx context.Context, in room.Input) (room.Room, error) {
	var out room.Room
	err := c.do(ctx, "create room", http.MethodPost, "/rooms", in, &out)
	return out, err
}

// UpdateRoom replaces the editable fields of a room.
func (c *Client) UpdateRoom(ctx context.Context, id int64, in room.Input) (room.Room, error) {
	var out room.Room
	err := c.do(ctx, "update room", http.MethodPut, fmt.Sprintf("/rooms/%d", id), in, &out)
	return out, err
}

// DeleteRoom removes a room. The store drops the room's bookings with it.
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.do(ctx, "delete room", http.MethodDelete, fmt.Sprintf("/rooms/%d", id), nil, nil)
}

// ListPrices returns the per-weekday price rows.
func (c *Client) ListPrices(ctx context.Context) ([]room.Price, error) {
	var out []room.Price
	if err := c.do(ctx, "load prices", http.MethodGet, "/prices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
