package core

import "time"

// Product is a catalog entry.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListOptions control pagination and filtering of product queries.
// Category and Tags are case-insensitive substring filters; a product
// matches the tag filter when any of its tags matches any requested tag.
type ListOptions struct {
	Page     int
	Limit    int
	Category string
	Tags     []string
}

// PageMeta describes the position of a page inside the full result set.
type PageMeta struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// ProductPage is one page of products plus its pagination metadata.
type ProductPage struct {
	Data []*Product `json:"data"`
	Meta PageMeta   `json:"meta"`
}
