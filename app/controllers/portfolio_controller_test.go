package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cosmicdevspace/app/models"
	"cosmicdevspace/app/repositories/mock"
	"cosmicdevspace/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPortfolioRouter(controller *PortfolioController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/portfolio", controller.Index).Methods("GET")
	router.HandleFunc("/api/portfolio", controller.Create).Methods("POST")
	router.HandleFunc("/api/portfolio/{itemId}", controller.Show).Methods("GET")
	router.HandleFunc("/api/portfolio/{itemId}", controller.Edit).Methods("PUT")
	router.HandleFunc("/api/portfolio/{itemId}", controller.Delete).Methods("DELETE")

	return router
}

func TestPortfolioController(t *testing.T) {
	itemRepo := mock.NewPortfolioRepository()
	commentRepo := mock.NewCommentRepository()
	controller := NewPortfolioController(services.NewPortfolioService(itemRepo, commentRepo))
	router := setupPortfolioRouter(controller)

	var createdID string

	t.Run("create item", func(t *testing.T) {
		body := `{"title":"Nebula Tracker","category":"project","description":"Tracks nebulae"}`
		req := httptest.NewRequest("POST", "/api/portfolio", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		success, data, _ := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, success)

		var item models.PortfolioItem
		require.NoError(t, json.Unmarshal(data, &item))
		assert.NotEmpty(t, item.ID)
		createdID = item.ID
	})

	t.Run("create rejects blank title", func(t *testing.T) {
		body := `{"title":"  ","category":"project"}`
		req := httptest.NewRequest("POST", "/api/portfolio", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("show item", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/portfolio/"+createdID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("show missing item", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/portfolio/ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list items", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/portfolio", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		_, data, _ := decodeEnvelope(t, w.Body.Bytes())

		var items []*models.PortfolioItem
		require.NoError(t, json.Unmarshal(data, &items))
		assert.Len(t, items, 1)
	})

	t.Run("edit item", func(t *testing.T) {
		body := `{"title":"Nebula Tracker v2","category":"project"}`
		req := httptest.NewRequest("PUT", "/api/portfolio/"+createdID, strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		item, err := itemRepo.GetByID(createdID)
		require.NoError(t, err)
		assert.Equal(t, "Nebula Tracker v2", item.Title)
	})

	t.Run("delete item", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/portfolio/"+createdID, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)

		_, err := itemRepo.GetByID(createdID)
		assert.Error(t, err)
	})
}

func TestGuestbookController(t *testing.T) {
	guestRepo := mock.NewGuestbookRepository()
	controller := NewGuestbookController(services.NewGuestbookService(guestRepo))

	router := mux.NewRouter()
	router.HandleFunc("/api/guestbook", controller.Index).Methods("GET")
	router.HandleFunc("/api/guestbook", controller.Create).Methods("POST")

	t.Run("sign guestbook", func(t *testing.T) {
		body := `{"name":"Visitor","message":"Great site!"}`
		req := httptest.NewRequest("POST", "/api/guestbook", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		success, data, _ := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, success)

		var entry models.GuestbookEntry
		require.NoError(t, json.Unmarshal(data, &entry))
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("rejects blank message", func(t *testing.T) {
		body := `{"name":"Visitor","message":"  "}`
		req := httptest.NewRequest("POST", "/api/guestbook", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lists entries", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/guestbook", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		_, data, _ := decodeEnvelope(t, w.Body.Bytes())

		var entries []*models.GuestbookEntry
		require.NoError(t, json.Unmarshal(data, &entries))
		assert.Len(t, entries, 1)
	})

	t.Run("rejects bad limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/guestbook?limit=-3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
