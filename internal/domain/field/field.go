// Package field holds the closed set of input field tags that validation
// messages are keyed by.
package field

import "github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"

// Name identifies one input field.
type Name string

const (
	CheckInDate    Name = "check_in_date"
	CheckOutDate   Name = "check_out_date"
	Guests         Name = "guests"
	Phone          Name = "phone"
	PassportSeries Name = "passport_series"
	PassportNumber Name = "passport_number"
	RoomNumber     Name = "room_number"
	Category       Name = "category"
	Capacity       Name = "capacity"
	GuestName      Name = "name"
)

// Errors maps a field to its validation message. An empty Errors means valid.
type Errors map[Name]string

// Add records msg for f unless f already has a message.
func (e Errors) Add(f Name, msg string) {
	if _, exists := e[f]; !exists {
		e[f] = msg
	}
}

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Err converts the errors into a domain validation error, or nil when valid.
func (e Errors) Err(message string) error {
	if e.Valid() {
		return nil
	}
	fields := make(map[string]string, len(e))
	for k, v := range e {
		fields[string(k)] = v
	}
	return domain.NewFieldValidationError(message, fields)
}
