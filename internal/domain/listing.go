package domain

import "time"

type ListingStatus string

const (
	// ListingStatusActive means the listing is available for rent.
	ListingStatusActive ListingStatus = "active"
	// ListingStatusRented means the listing is currently occupied.
	ListingStatusRented ListingStatus = "rented"
)

// Listing is a rentable property record ("post"). The lifecycle core only
// ever flips its availability; everything else belongs to the catalog.
type Listing struct {
	ID          int32         `json:"id"`
	OwnerID     int32         `json:"user_id"`
	Title       string        `json:"title"`
	Address     string        `json:"address"`
	MonthlyRent int64         `json:"price"`
	Status      ListingStatus `json:"status"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}
