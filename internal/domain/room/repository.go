package room

import "context"

// Store defines the persistence contract for rooms as seen by the front desk.
type Store interface {
	ListRooms(ctx context.Context) ([]Room, error)
	CreateRoom(ctx context.Context, in Input) (Room, error)
	UpdateRoom(ctx context.Context, id int64, in Input) (Room, error)
	// DeleteRoom removes the room together with its bookings.
	DeleteRoom(ctx context.Context, id int64) error
}
