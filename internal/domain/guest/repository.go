package guest

import "context"

// Store defines the persistence contract for guests as seen by the front desk.
type Store interface {
	ListGuests(ctx context.Context) ([]Guest, error)
	CreateGuest(ctx context.Context, in Input) (Guest, error)
	UpdateGuest(ctx context.Context, id int64, in Input) (Guest, error)
	DeleteGuest(ctx context.Context, id int64) error
}
