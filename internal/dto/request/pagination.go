package request

import (
	"net/url"

	"ride-api/pkg/utils"
)

type PaginatedRequest struct {
	Page     int
	PageSize int
}

// NewPaginatedRequest reads page and page_size leniently: bad values fall
// back to the defaults and page_size is capped at maxSize.
func NewPaginatedRequest(values url.Values, defaultSize, maxSize int) PaginatedRequest {
	return PaginatedRequest{
		Page:     utils.ParseInt(values.Get("page"), 1),
		PageSize: utils.PageSize(values.Get("page_size"), defaultSize, maxSize),
	}
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.PageSize)
}

func (p PaginatedRequest) Limit() int {
	return p.PageSize
}

// RideFilter holds the ride listing query params.
type RideFilter struct {
	Status     string
	RiderEmail string
	Latitude   string
	Longitude  string
	Order      string
	PaginatedRequest
}

func NewRideFilter(values url.Values, defaultSize, maxSize int) RideFilter {
	return RideFilter{
		Status:           values.Get("status"),
		RiderEmail:       values.Get("id_rider__email"),
		Latitude:         values.Get("latitude"),
		Longitude:        values.Get("longitude"),
		Order:            values.Get("order"),
		PaginatedRequest: NewPaginatedRequest(values, defaultSize, maxSize),
	}
}
