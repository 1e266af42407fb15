package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmicdevspace/app/models"
	"cosmicdevspace/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupTestRouter(t *testing.T) (http.Handler, *badger.DB) {
	t.Helper()
	db := setupTestDB(t)
	return SetupRoutes(db, zerolog.Nop()), db
}

func seedPortfolioItem(t *testing.T, db *badger.DB) *models.PortfolioItem {
	t.Helper()
	item := &models.PortfolioItem{
		Title:       "Seeded Project",
		Category:    models.CategoryProject,
		Description: "Seeded for routing tests",
	}
	require.NoError(t, repositories.NewBadgerPortfolioRepository(db).Create(item))
	return item
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, apiEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var env apiEnvelope
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}
