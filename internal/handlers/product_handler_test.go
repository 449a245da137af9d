package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amalynlocs/salon-api/internal/models"
)

type productResponse struct {
	Success bool           `json:"success"`
	Product models.Product `json:"product"`
}

func TestProductCreateAssignsIDAndTimestamp(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/admin/products", token, map[string]any{
		"product": map[string]any{
			"name":        "Rosewater Mist",
			"description": "Hydrating loc refresher",
			"price":       4500,
			"category":    "Care",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp productResponse
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.Product.ID)
	require.True(t, resp.Product.InStock)
	require.Equal(t, "care", resp.Product.Category)

	created, err := time.Parse(time.RFC3339, resp.Product.CreatedAt)
	require.NoError(t, err)
	require.False(t, created.After(time.Now().Add(time.Minute)))
}

func TestProductCreateRequiresName(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/admin/products", token, map[string]any{
		"product": map[string]any{"price": 4500},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductUpdateIsShallowMerge(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/admin/products", token, map[string]any{
		"product": map[string]any{
			"name":        "Shea Butter",
			"description": "Raw, unrefined",
			"price":       3000,
			"category":    "Care",
			"inStock":     true,
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created productResponse
	decodeBody(t, w, &created)

	// patch only the price; everything else must survive
	w = env.do(t, http.MethodPut, adminPath("/products/%s", created.Product.ID), token, map[string]any{
		"product": map[string]any{"price": 3500},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated productResponse
	decodeBody(t, w, &updated)
	require.Equal(t, created.Product.ID, updated.Product.ID)
	require.Equal(t, "Shea Butter", updated.Product.Name)
	require.Equal(t, "Raw, unrefined", updated.Product.Description)
	require.Equal(t, 3500.0, updated.Product.Price)
	require.True(t, updated.Product.InStock)
	require.NotEmpty(t, updated.Product.UpdatedAt)

	// flip stock off, keep price
	w = env.do(t, http.MethodPut, adminPath("/products/%s", created.Product.ID), token, map[string]any{
		"product": map[string]any{"inStock": false},
	})
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &updated)
	require.False(t, updated.Product.InStock)
	require.Equal(t, 3500.0, updated.Product.Price)
}

func TestProductUpdateUnknownIDIs404(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPut, "/admin/products/missing", token, map[string]any{
		"product": map[string]any{"price": 1},
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductDeleteThenListEmpty(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/admin/products", token, map[string]any{
		"product": map[string]any{"name": "Loc Gel"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created productResponse
	decodeBody(t, w, &created)

	w = env.do(t, http.MethodDelete, adminPath("/products/%s", created.Product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// second delete is not an error
	w = env.do(t, http.MethodDelete, adminPath("/products/%s", created.Product.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Products []models.Product `json:"products"`
	}
	w = env.do(t, http.MethodGet, "/admin/products", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	require.Empty(t, list.Products)
}

func TestProductListCategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	for _, p := range []map[string]any{
		{"name": "Shea Butter", "category": "Care"},
		{"name": "Wooden Comb", "category": "Tools"},
	} {
		w := env.do(t, http.MethodPost, "/admin/products", token, map[string]any{"product": p})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var list struct {
		Products []models.Product `json:"products"`
	}
	w := env.do(t, http.MethodGet, "/admin/products?category=tools", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	require.Len(t, list.Products, 1)
	require.Equal(t, "Wooden Comb", list.Products[0].Name)
}

func TestServiceCRUD(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/admin/services", token, map[string]any{
		"service": map[string]any{
			"name":     "Starter Locs",
			"price":    25000,
			"duration": "3 hours",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Service models.Service `json:"service"`
	}
	decodeBody(t, w, &created)
	require.NotEmpty(t, created.Service.ID)
	require.True(t, created.Service.Active)

	w = env.do(t, http.MethodPut, adminPath("/services/%s", created.Service.ID), token, map[string]any{
		"service": map[string]any{"active": false},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		Service models.Service `json:"service"`
	}
	decodeBody(t, w, &updated)
	require.False(t, updated.Service.Active)
	require.Equal(t, "Starter Locs", updated.Service.Name)
	require.Equal(t, "3 hours", updated.Service.Duration)

	w = env.do(t, http.MethodDelete, adminPath("/services/%s", created.Service.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Services []models.Service `json:"services"`
	}
	w = env.do(t, http.MethodGet, "/admin/services", token, nil)
	decodeBody(t, w, &list)
	require.Empty(t, list.Services)
}
