package handler

import "time"

type createListingRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required"`
	IPType      string  `json:"ip_type"     validate:"required,oneof=Patent Trademark Copyright"`
}

type listingResponse struct {
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

type createServiceRequestBody struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Budget      float64 `json:"budget"      validate:"required,gt=0"`
	ClientID    int64   `json:"client_id"   validate:"required,gt=0"`
}

type serviceRequestResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
