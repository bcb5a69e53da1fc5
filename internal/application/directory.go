package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
)

// CreateGuest validates and registers a guest.
func (d *Desk) CreateGuest(ctx context.Context, in guest.Input) (guest.Guest, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := guest.Validate(in).Err("invalid guest"); err != nil {
		return guest.Guest{}, actionErr(ActionCreateGuest, err)
	}
	created, err := d.store.CreateGuest(ctx, in)
	if err != nil {
		return guest.Guest{}, actionErr(ActionCreateGuest, err)
	}
	d.logger.Info("guest created", zap.Int64("guest_id", created.ID))
	d.reload(ctx, ActionCreateGuest)
	return created, nil
}

// UpdateGuest validates and saves a guest.
func (d *Desk) UpdateGuest(ctx context.Context, id int64, in guest.Input) (guest.Guest, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := guest.Validate(in).Err("invalid guest"); err != nil {
		return guest.Guest{}, actionErr(ActionUpdateGuest, err)
	}
	updated, err := d.store.UpdateGuest(ctx, id, in)
	if err != nil {
		return guest.Guest{}, actionErr(ActionUpdateGuest, err)
	}
	d.reload(ctx, ActionUpdateGuest)
	return updated, nil
}

// DeleteGuest removes a guest.
func (d *Desk) DeleteGuest(ctx context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.DeleteGuest(ctx, id); err != nil {
		return actionErr(ActionDeleteGuest, err)
	}
	d.logger.Info("guest deleted", zap.Int64("guest_id", id))
	d.reload(ctx, ActionDeleteGuest)
	return nil
}

// CreateRoom validates a room against the current room list and adds it.
func (d *Desk) CreateRoom(ctx context.Context, in room.Input) (room.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(ctx); err != nil {
		return room.Room{}, err
	}
	if err := room.Validate(in, d.snapshot.Rooms, nil).Err("invalid room"); err != nil {
		return room.Room{}, actionErr(ActionCreateRoom, err)
	}
	created, err := d.store.CreateRoom(ctx, room.Room{}.Apply(in).Input())
	if err != nil {
		return room.Room{}, actionErr(ActionCreateRoom, err)
	}
	d.logger.Info("room created", zap.Int64("room_id", created.ID), zap.String("room_number", created.RoomNumber))
	d.reload(ctx, ActionCreateRoom)
	return created, nil
}

// UpdateRoom validates and saves a room. The room may keep its own number.
func (d *Desk) UpdateRoom(ctx context.Context, id int64, in room.Input) (room.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(ctx); err != nil {
		return room.Room{}, err
	}
	if _, err := d.room(id); err != nil {
		return room.Room{}, actionErr(ActionUpdateRoom, err)
	}
	if err := room.Validate(in, d.snapshot.Rooms, &id).Err("invalid room"); err != nil {
		return room.Room{}, actionErr(ActionUpdateRoom, err)
	}
	updated, err := d.store.UpdateRoom(ctx, id, room.Room{}.Apply(in).Input())
	if err != nil {
		return room.Room{}, actionErr(ActionUpdateRoom, err)
	}
	d.reload(ctx, ActionUpdateRoom)
	return updated, nil
}

// DeleteRoom removes a room and, in the store, its bookings.
func (d *Desk) DeleteRoom(ctx context.Context, id int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.DeleteRoom(ctx, id); err != nil {
		return actionErr(ActionDeleteRoom, err)
	}
	d.logger.Info("room deleted", zap.Int64("room_id", id))
	d.reload(ctx, ActionDeleteRoom)
	return nil
}
