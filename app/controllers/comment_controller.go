package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cosmicdevspace/app/repositories"
	"cosmicdevspace/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

const defaultCommentLimit = 50

// CommentController handles HTTP requests for comments, replies and likes
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// NewCommentControllerWithDB creates a new CommentController with a DB instance
func NewCommentControllerWithDB(db *badger.DB) *CommentController {
	itemRepo := repositories.NewBadgerPortfolioRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	likeRepo := repositories.NewBadgerLikeRepository(db)

	return &CommentController{
		commentService: services.NewCommentService(commentRepo, likeRepo, itemRepo),
	}
}

// SetService sets the comment service for testing
func (cc *CommentController) SetService(service *services.CommentService) {
	cc.commentService = service
}

// commentBody is the request payload for comments and replies
type commentBody struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Text  string `json:"text"`
}

// Index handles listing an item's comments.
// GET /api/portfolio/{itemId}/comments?sort={-createdAt|createdAt}&limit=N
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	sort := repositories.SortNewestFirst
	if r.URL.Query().Get("sort") == string(repositories.SortOldestFirst) {
		sort = repositories.SortOldestFirst
	}

	limit := defaultCommentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			sendError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	comments, err := cc.commentService.ListComments(itemID, sort, limit, r.Header.Get("X-Visitor-ID"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Portfolio item not found")
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to fetch comments: "+err.Error())
		return
	}

	sendData(w, http.StatusOK, comments)
}

// Create handles creating a new top-level comment.
// POST /api/portfolio/{itemId}/comments
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["itemId"]

	var body commentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	comment, err := cc.commentService.CreateComment(itemID, body.Name, body.Email, body.Text)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Portfolio item not found")
			return
		}
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendData(w, http.StatusCreated, comment)
}

// Reply handles creating a reply on an existing comment.
// POST /api/portfolio/{itemId}/comments/{commentId}/reply
func (cc *CommentController) Reply(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID := vars["itemId"]
	commentID := vars["commentId"]

	var body commentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	comment, err := cc.commentService.CreateReply(itemID, commentID, body.Name, body.Email, body.Text)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Comment not found")
			return
		}
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendData(w, http.StatusCreated, comment)
}

// likeResult is the payload answered by the like toggle
type likeResult struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likesCount"`
}

// Like handles toggling the caller's like on a comment.
// POST /api/portfolio/{itemId}/comments/{commentId}/like
func (cc *CommentController) Like(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID := vars["itemId"]
	commentID := vars["commentId"]

	visitorID := r.Header.Get("X-Visitor-ID")
	if visitorID == "" {
		sendError(w, http.StatusBadRequest, "Missing X-Visitor-ID header")
		return
	}

	liked, count, err := cc.commentService.ToggleLike(itemID, commentID, visitorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			sendError(w, http.StatusNotFound, "Comment not found")
			return
		}
		sendError(w, http.StatusInternalServerError, "Failed to toggle like: "+err.Error())
		return
	}

	sendData(w, http.StatusOK, likeResult{Liked: liked, LikesCount: count})
}
