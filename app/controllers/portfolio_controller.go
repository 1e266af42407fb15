package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"cosmicdevspace/app/models"
	"cosmicdevspace/app/repositories"
	"cosmicdevspace/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// PortfolioController handles HTTP requests for portfolio items
type PortfolioController struct {
	portfolioService *services.PortfolioService
}

// NewPortfolioController creates a new PortfolioController
func NewPortfolioController(portfolioService *services.PortfolioService) *PortfolioController {
	return &PortfolioController{portfolioService: portfolioService}
}

// NewPortfolioControllerWithDB creates a new PortfolioController with a DB instance
func NewPortfolioControllerWithDB(db *badger.DB) *PortfolioController {
	itemRepo := repositories.NewBadgerPortfolioRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)

	return &PortfolioController{
		portfolioService: services.NewPortfolioService(itemRepo, commentRepo),
	}
}

// SetService sets the portfolio service for testing
func (pc *PortfolioController) SetService(service *services.PortfolioService) {
	pc.portfolioService = service
}

// Index handles listing all portfolio items.
// GET /api/portfolio
func (pc *PortfolioController) Index(w http.ResponseWriter, r *http.Request) {
	items, err := pc.portfolioService.ListItems()
	if err != nil {
		sendError(w, http.StatusInternalServerError, "Failed to fetch portfolio items: "+err.Error())
		return
	}

	sendData(w, http.StatusOK, items)
}

// Show handles fetching a single portfolio item.
// GET /api/portfolio/{itemId}
func (pc *PortfolioController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["itemId"]

	item, err := pc.portfolioService.GetItem(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Portfolio item not found")
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to fetch portfolio item: "+err.Error())
		return
	}

	sendData(w, http.StatusOK, item)
}

// Create handles creating a new portfolio item.
// POST /api/portfolio
func (pc *PortfolioController) Create(w http.ResponseWriter, r *http.Request) {
	var item models.PortfolioItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	if err := pc.portfolioService.CreateItem(&item); err != nil {
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendData(w, http.StatusCreated, item)
}

// Edit handles updating an existing portfolio item.
// PUT /api/portfolio/{itemId}
func (pc *PortfolioController) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["itemId"]

	var item models.PortfolioItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	item.ID = id

	if err := pc.portfolioService.UpdateItem(&item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Portfolio item not found")
			return
		}
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendData(w, http.StatusOK, item)
}

// Delete handles deleting a portfolio item together with its comments.
// DELETE /api/portfolio/{itemId}
func (pc *PortfolioController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["itemId"]

	if err := pc.portfolioService.DeleteItem(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Portfolio item not found")
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to delete portfolio item: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
