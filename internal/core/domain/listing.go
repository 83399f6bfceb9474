package domain

import (
	"errors"
	"time"
)

const (
	ListingStatusActive = "active"
	ListingStatusSold   = "sold"
)

const (
	IPTypePatent    = "Patent"
	IPTypeTrademark = "Trademark"
	IPTypeCopyright = "Copyright"
)

var ErrListingNotFound = errors.New("listing not found")

// Listing is an intellectual-property asset offered for sale or license.
type Listing struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	IPType      string    `json:"ip_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceRequest is a client's posted brief for expert work.
type ServiceRequest struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
