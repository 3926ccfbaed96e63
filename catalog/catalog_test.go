package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutes(t *testing.T) {
	r := New(Config{})

	tt := []struct {
		name string
		got  string
		want string
	}{
		{"collection", r.Collection(), "https://dummyjson.com/products"},
		{"by id", r.ByID(2), "https://dummyjson.com/products/2"},
		{"item", r.Item(1), "https://dummyjson.com/products/1"},
		{"category", r.Category("smartphones"), "https://dummyjson.com/products/category/smartphones"},
		{"category escaped", r.Category("home decoration"), "https://dummyjson.com/products/category/home%20decoration"},
		{"search", r.Search("iphone"), "https://dummyjson.com/products/search?q=iphone"},
		{"search escaped", r.Search("iphone 14"), "https://dummyjson.com/products/search?q=iphone+14"},
		{"page", r.Page(3, 0), "https://dummyjson.com/products?limit=3&skip=0"},
		{"add", r.Add(), "https://dummyjson.com/products/add"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestRoutesBaseURL(t *testing.T) {
	r := New(Config{BaseURL: "http://localhost:8080/products/"})
	assert.Equal(t, "http://localhost:8080/products", r.Collection())
	assert.Equal(t, "http://localhost:8080/products/add", r.Add())
}
