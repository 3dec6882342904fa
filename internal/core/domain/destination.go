package domain

import "time"

// Destination is a travel destination owned by exactly one user. The owner
// is fixed at creation time and never reassigned by an update.
type Destination struct {
	ID          int64  `json:"id"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Description string `json:"description"`
	Image       string `json:"image"`
	OwnerID     int64  `json:"owner_id"`
	// OwnerUsername is denormalised by the repository for response shaping.
	OwnerUsername string    `json:"username,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
