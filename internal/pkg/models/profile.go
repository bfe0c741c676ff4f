package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a resident profile keyed by their normalized phone number
type Profile struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Phone         string    `json:"phone" db:"phone"`
	Name          string    `json:"name" db:"name"`
	Street        string    `json:"street" db:"street"`
	Block         string    `json:"block" db:"block"`
	Lot           string    `json:"lot" db:"lot"`
	House         string    `json:"house" db:"house"`
	Directions    string    `json:"directions,omitempty" db:"directions"`
	Latitude      *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64  `json:"longitude,omitempty" db:"longitude"`
	Geohash       string    `json:"geohash,omitempty" db:"geohash"`
	ResidentialID string    `json:"residential_id" db:"residential_id"`
	Verified      bool      `json:"verified" db:"verified"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileUpdate carries partial profile fields to merge into a draft.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Street        *string  `json:"street,omitempty"`
	Block         *string  `json:"block,omitempty"`
	Lot           *string  `json:"lot,omitempty"`
	House         *string  `json:"house,omitempty"`
	Directions    *string  `json:"directions,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	ResidentialID *string  `json:"residential_id,omitempty"`
}

// Address renders the delivery address the way order messages expect it
func (p *Profile) Address() string {
	return p.Street + " Mz " + p.Block + " Lt " + p.Lot + " #" + p.House
}
