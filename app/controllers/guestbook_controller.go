package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cosmicdevspace/app/repositories"
	"cosmicdevspace/app/services"

	"github.com/dgraph-io/badger/v4"
)

// GuestbookController handles HTTP requests for the guestbook
type GuestbookController struct {
	guestbookService *services.GuestbookService
}

// NewGuestbookController creates a new GuestbookController
func NewGuestbookController(guestbookService *services.GuestbookService) *GuestbookController {
	return &GuestbookController{guestbookService: guestbookService}
}

// NewGuestbookControllerWithDB creates a new GuestbookController with a DB instance
func NewGuestbookControllerWithDB(db *badger.DB) *GuestbookController {
	guestRepo := repositories.NewBadgerGuestbookRepository(db)
	return &GuestbookController{guestbookService: services.NewGuestbookService(guestRepo)}
}

// Index handles listing guestbook entries.
// GET /api/guestbook?limit=N
func (gc *GuestbookController) Index(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			sendError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := gc.guestbookService.List(limit)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch guestbook: "+err.Error())
		return
	}

	sendData(w, http.StatusOK, entries)
}

// Create handles signing the guestbook.
// POST /api/guestbook
func (gc *GuestbookController) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	entry, err := gc.guestbookService.Sign(body.Name, body.Message)
	if err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendData(w, http.StatusCreated, entry)
}
