package catalog

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarmac-project/fetchkit/fetch"
	"github.com/tarmac-project/fetchkit/fetchmock"
)

var routes = New(Config{})

func TestFetchAllProducts(t *testing.T) {
	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK:   true,
		Body: func() any { return Page[Product]{Products: []Product{{ID: 1, Title: "iPhone"}}} },
	})

	res, err := m.Fetch(context.Background(), routes.Collection(), nil)
	require.NoError(t, err)

	var data Page[Product]
	require.NoError(t, res.JSON(&data))

	assert.True(t, m.CalledWith(routes.Collection(), nil))
	require.NotEmpty(t, data.Products)
	assert.Equal(t, "iPhone", data.Products[0].Title)
}

func TestFetchProductByID(t *testing.T) {
	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK:   true,
		Body: func() any { return Product{ID: 2, Title: "Samsung Galaxy"} },
	})

	res, err := m.Fetch(context.Background(), routes.ByID(2), nil)
	require.NoError(t, err)

	var data Product
	require.NoError(t, res.JSON(&data))

	assert.Equal(t, 2, data.ID)
	assert.Equal(t, "Samsung Galaxy", data.Title)
}

func TestFetchProductsByCategory(t *testing.T) {
	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK:   true,
		Body: func() any { return Page[Product]{Products: []Product{{ID: 3, Category: "smartphones"}}} },
	})

	res, err := m.Fetch(context.Background(), routes.Category("smartphones"), nil)
	require.NoError(t, err)

	var data Page[Product]
	require.NoError(t, res.JSON(&data))

	require.NotEmpty(t, data.Products)
	assert.Equal(t, "smartphones", data.Products[0].Category)
}

func TestNetworkError(t *testing.T) {
	m := fetchmock.Install(t)
	m.QueueRejection(errors.New("Network Error"))

	res, err := m.Fetch(context.Background(), routes.ByID(99), nil)

	assert.Nil(t, res)
	assert.EqualError(t, err, "Network Error")
}

func TestAddProduct(t *testing.T) {
	newProduct := Product{Title: "Novo Produto"}

	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK: true,
		Body: func() any {
			created := newProduct
			created.ID = 100
			return created
		},
	})

	opts, err := fetch.JSONOptions(http.MethodPost, newProduct)
	require.NoError(t, err)

	res, err := m.Fetch(context.Background(), routes.Add(), opts)
	require.NoError(t, err)

	var data Product
	require.NoError(t, res.JSON(&data))

	assert.Equal(t, 100, data.ID)
	assert.Equal(t, "Novo Produto", data.Title)

	call, ok := m.LastCall()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, call.Options.Method)
	assert.JSONEq(t, `{"title":"Novo Produto"}`, string(call.Options.Body))
	assert.Equal(t, "application/json", call.Options.Header.Get("Content-Type"))
}

func TestUpdateProduct(t *testing.T) {
	updated := Product{Title: "Atualizado"}

	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK: true,
		Body: func() any {
			p := updated
			p.ID = 1
			return p
		},
	})

	opts, err := fetch.JSONOptions(http.MethodPut, updated)
	require.NoError(t, err)

	res, err := m.Fetch(context.Background(), routes.Item(1), opts)
	require.NoError(t, err)

	var data Product
	require.NoError(t, res.JSON(&data))

	assert.Equal(t, "Atualizado", data.Title)
	assert.True(t, m.CalledWith(routes.Item(1), opts))
}

func TestDeleteProduct(t *testing.T) {
	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK:   true,
		Body: func() any { return Product{ID: 1, IsDeleted: true} },
	})

	opts := &fetch.Options{Method: http.MethodDelete}
	res, err := m.Fetch(context.Background(), routes.Item(1), opts)
	require.NoError(t, err)

	var data Product
	require.NoError(t, res.JSON(&data))

	assert.True(t, data.IsDeleted)
	assert.True(t, m.CalledWith(routes.Item(1), &fetch.Options{Method: http.MethodDelete}))
}

func TestFetchProductsWithLimitAndSkip(t *testing.T) {
	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK:   true,
		Body: func() any { return Page[int]{Products: []int{1, 2, 3}, Total: 100} },
	})

	res, err := m.Fetch(context.Background(), routes.Page(3, 0), nil)
	require.NoError(t, err)

	var data Page[int]
	require.NoError(t, res.JSON(&data))

	assert.Len(t, data.Products, 3)
	assert.Equal(t, 100, data.Total)
	assert.True(t, m.CalledWith("https://dummyjson.com/products?limit=3&skip=0", nil))
}

func TestSearchByKeyword(t *testing.T) {
	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK:   true,
		Body: func() any { return Page[Product]{Products: []Product{{Title: "iPhone 14"}}} },
	})

	res, err := m.Fetch(context.Background(), routes.Search("iphone"), nil)
	require.NoError(t, err)

	var data Page[Product]
	require.NoError(t, res.JSON(&data))

	require.NotEmpty(t, data.Products)
	assert.Contains(t, strings.ToLower(data.Products[0].Title), "iphone")
}

func TestAddProductFailure(t *testing.T) {
	m := fetchmock.Install(t)
	m.QueueResponse(fetchmock.Response{
		OK:     false,
		Status: http.StatusBadRequest,
		Body:   func() any { return ErrorBody{Message: "Missing title"} },
	})

	opts, err := fetch.JSONOptions(http.MethodPost, struct{}{})
	require.NoError(t, err)

	res, err := m.Fetch(context.Background(), routes.Add(), opts)
	require.NoError(t, err, "application failures are not transport errors")

	var data ErrorBody
	require.NoError(t, res.JSON(&data))

	assert.False(t, res.OK)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "Missing title", data.Message)
}

func TestScenariosThroughHostFetcher(t *testing.T) {
	m := fetchmock.Install(t)
	h, err := fetch.NewHost(fetch.HostConfig{HostCall: m.HostCall})
	require.NoError(t, err)

	m.QueueJSON(http.StatusOK, Page[Product]{Products: []Product{{ID: 1, Title: "iPhone"}}, Total: 1}).
		QueueRejection(errors.New("Network Error")).
		QueueJSON(http.StatusBadRequest, ErrorBody{Message: "Missing title"})

	ctx := context.Background()

	res, err := h.Fetch(ctx, routes.Collection(), nil)
	require.NoError(t, err)
	var page Page[Product]
	require.NoError(t, res.JSON(&page))
	assert.Equal(t, "iPhone", page.Products[0].Title)
	assert.Equal(t, 1, page.Total)

	_, err = h.Fetch(ctx, routes.ByID(99), nil)
	assert.ErrorContains(t, err, "Network Error")

	opts, err := fetch.JSONOptions(http.MethodPost, struct{}{})
	require.NoError(t, err)
	res, err = h.Fetch(ctx, routes.Add(), opts)
	require.NoError(t, err)
	var failure ErrorBody
	require.NoError(t, res.JSON(&failure))
	assert.False(t, res.OK)
	assert.Equal(t, "Missing title", failure.Message)

	assert.Equal(t, 3, m.CallCount())
	assert.NoError(t, m.ExpectationsWereMet())
}
