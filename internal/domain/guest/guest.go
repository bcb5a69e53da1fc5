package guest

// Guest is a person registered at the front desk. Bookings reference guests by ID.
type Guest struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	PassportSeries string `json:"passport_series"`
	PassportNumber string `json:"passport_number"`
}

// Input is the editable part of a guest, used for create and update.
type Input struct {
	Name           string `json:"name" binding:"required,max=100"`
	Phone          string `json:"phone" binding:"required,max=15"`
	Email          string `json:"email" binding:"omitempty,max=100"`
	PassportSeries string `json:"passport_series" binding:"omitempty,max=4"`
	PassportNumber string `json:"passport_number" binding:"omitempty,max=6"`
}

// Apply copies in onto the guest, keeping its identity.
func (g Guest) Apply(in Input) Guest {
	g.Name = in.Name
	g.Phone = in.Phone
	g.Email = in.Email
	g.PassportSeries = in.PassportSeries
	g.PassportNumber = in.PassportNumber
	return g
}

// NameIndex maps guest IDs to display names.
func NameIndex(guests []Guest) map[int64]string {
	idx := make(map[int64]string, len(guests))
	for _, g := range guests {
		idx[g.ID] = g.Name
	}
	return idx
}
