package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	router := mux.NewRouter()
	NewWebService().RegisterEndpoints(context.TODO(), router)

	t.Run("List products", func(t *testing.T) {
		// when
		request, err := http.NewRequest(http.MethodGet, "/products", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := response.Body.String()
		assert.Contains(t, got, "極上の和牛セット")
		assert.Contains(t, got, "ラムチョップ")
	})

	t.Run("Get product", func(t *testing.T) {
		// when
		request, err := http.NewRequest(http.MethodGet, "/products/3", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "鶏もも肉")
	})

	t.Run("Get product not exists", func(t *testing.T) {
		// when
		request, err := http.NewRequest(http.MethodGet, "/products/999", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Product uids are unique", func(t *testing.T) {
		seen := map[string]bool{}
		for _, p := range Products() {
			assert.False(t, seen[p.UID])
			seen[p.UID] = true
		}
	})
}
