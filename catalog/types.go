package catalog

// Product is a single catalog entry. Fields missing from a payload keep their
// zero value.
type Product struct {
	ID          int     `json:"id,omitempty"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	Brand       string  `json:"brand,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	IsDeleted   bool    `json:"isDeleted,omitempty"`
	DeletedOn   string  `json:"deletedOn,omitempty"`
}

// Page is the envelope returned by list endpoints.
type Page[T any] struct {
	Products []T `json:"products"`
	Total    int `json:"total"`
	Skip     int `json:"skip"`
	Limit    int `json:"limit"`
}

// ErrorBody is the payload of a failed request.
type ErrorBody struct {
	Message string `json:"message"`
}
