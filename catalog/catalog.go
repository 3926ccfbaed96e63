package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the root of the product collection.
const DefaultBaseURL = "https://dummyjson.com/products"

// Config controls how Routes builds resource URLs.
type Config struct {
	// BaseURL is the product collection root. Empty means DefaultBaseURL.
	BaseURL string
}

// Routes builds the URLs of the catalog resources.
type Routes struct {
	base string
}

// New creates Routes rooted at the configured base URL.
func New(config Config) *Routes {
	base := config.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Routes{base: strings.TrimRight(base, "/")}
}

// Collection is the product collection.
func (r *Routes) Collection() string { return r.base }

// ByID is a single product.
func (r *Routes) ByID(id int) string { return r.base + "/" + strconv.Itoa(id) }

// Item is the target of PUT and DELETE for a product.
func (r *Routes) Item(id int) string { return r.ByID(id) }

// Category lists the products of one category.
func (r *Routes) Category(name string) string {
	return r.base + "/category/" + url.PathEscape(name)
}

// Search lists the products matching q.
func (r *Routes) Search(q string) string {
	return r.base + "/search?" + url.Values{"q": {q}}.Encode()
}

// Page lists limit products after skipping skip.
func (r *Routes) Page(limit, skip int) string {
	return r.base + "?limit=" + strconv.Itoa(limit) + "&skip=" + strconv.Itoa(skip)
}

// Add is the creation endpoint.
func (r *Routes) Add() string { return r.base + "/add" }
