package model

import "time"

// Order statuses. Only "pending" is assigned by this layer; status
// transitions have no endpoint yet.
const OrderStatusPending = "pending"

// Order is a purchase record for a printed artwork with size/frame
// customization. Price is in minor currency units (cents).
type Order struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ArtworkID int       `json:"artworkId"`
	Size      string    `json:"size"`
	Frame     string    `json:"frame,omitempty"`
	Price     int       `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertOrder is the inbound payload for creating an order. Frame is
// optional ("no frame" is a valid choice); Status defaults to pending when
// not supplied.
type InsertOrder struct {
	UserID    int    `json:"userId" validate:"required"`
	ArtworkID int    `json:"artworkId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Frame     string `json:"frame"`
	Price     int    `json:"price" validate:"required"`
	Status    string `json:"status"`
}
