package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a buyer's rating of an advertiser after an order.
// Reviews are append-only; there is no update or delete path.
type Review struct {
	ID              uuid.UUID `json:"id" db:"id"`
	AdID            uuid.UUID `json:"ad_id" db:"ad_id"`
	AdvertiserPhone string    `json:"advertiser_phone" db:"advertiser_phone"`
	Rating          int       `json:"rating" db:"rating"`
	Comment         string    `json:"comment" db:"comment"`
	AuthorName      string    `json:"author_name" db:"author_name"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
