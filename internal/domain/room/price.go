package room

// Price is a per-weekday rate recorded for a room in the store.
type Price struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	DayOfWeek string `json:"day_of_week"`
	Price     int64  `json:"price"`
}

// PriceInput is the editable part of a price row.
type PriceInput struct {
	RoomID    int64  `json:"room_id" binding:"required,gt=0"`
	DayOfWeek string `json:"day_of_week" binding:"required,max=15"`
	Price     int64  `json:"price" binding:"gte=0"`
}
