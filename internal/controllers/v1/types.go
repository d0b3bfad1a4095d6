package v1

import (
	"github.com/m-tracker/backend/internal/types"
	mt_uuid "github.com/m-tracker/backend/internal/uuid"
)

type URIID struct {
	ID mt_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// URISlug binds resources that are addressed by a slug instead of a UUID.
type URISlug struct {
	Slug string `uri:"slug" binding:"required" example:"other-expense"`
}

type URIMonth struct {
	Month types.Month `uri:"month" binding:"required" example:"2025-01"` // Year and month in YYYY-MM format
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
