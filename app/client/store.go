package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"cosmicdevspace/app/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrValidation marks input rejected before any network call
var ErrValidation = errors.New("validation failed")

// envelope mirrors the API's response shape
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Options configures a CommentSection
type Options struct {
	BaseURL    string
	ItemID     string
	HTTPClient *http.Client
	Notifier   Notifier
	Renderer   Renderer
	Fallback   *FallbackStore
	Logger     zerolog.Logger
}

// CommentSection owns all network interaction and in-memory comment state
// for one portfolio item's comment section. Every mutation except the like
// toggle triggers a full reload so the server stays authoritative; the like
// toggle patches the affected comment in place. Overlapping loads are
// tolerated: each load takes a generation token and a response that is no
// longer current is discarded.
type CommentSection struct {
	httpClient *http.Client
	baseURL    string
	visitorID  string
	notifier   Notifier
	renderer   Renderer
	fallback   *FallbackStore
	log        zerolog.Logger

	mu         sync.Mutex
	state      PageState
	generation uint64
}

// NewCommentSection creates a comment section for the given item
func NewCommentSection(opts Options) *CommentSection {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = LogNotifier{Log: opts.Logger}
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = noopRenderer{}
	}

	visitorID := ""
	if opts.Fallback != nil {
		id, err := opts.Fallback.VisitorID()
		if err == nil {
			visitorID = id
		}
	}
	if visitorID == "" {
		visitorID = uuid.NewString()
	}

	return &CommentSection{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		visitorID:  visitorID,
		notifier:   notifier,
		renderer:   renderer,
		fallback:   opts.Fallback,
		log:        opts.Logger,
		state: PageState{
			ItemID: opts.ItemID,
			Page:   1,
			Sort:   SortNewest,
		},
	}
}

// State returns a snapshot of the current page state. The comment slice is
// shared; by convention only the CommentSection mutates it.
func (s *CommentSection) State() *PageState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	return &snapshot
}

// VisitorID returns the opaque identity sent with like toggles
func (s *CommentSection) VisitorID() string {
	return s.visitorID
}

// LoadComments fetches the item's comments with the current sort order and
// replaces the in-memory list. On failure the previous list is preserved
// and still rendered, so the view never sticks in a loading state. A
// response superseded by a newer load is discarded.
func (s *CommentSection) LoadComments(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	itemID := s.state.ItemID
	sortParam := s.state.Sort.Param()
	s.mu.Unlock()

	endpoint := fmt.Sprintf("%s/api/portfolio/%s/comments?sort=%s&limit=%d",
		s.baseURL, url.PathEscape(itemID), url.QueryEscape(sortParam), maxFetch)

	var comments []*models.Comment
	err := s.get(ctx, endpoint, &comments)

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		s.log.Debug().Str("item", itemID).Msg("discarding stale comment load")
		return nil
	}

	if err != nil {
		s.mu.Unlock()
		s.log.Error().Err(err).Str("item", itemID).Msg("failed to load comments")
		s.notifier.Error("Failed to load comments. Please try again.")
		s.renderer.Render(s.State())
		return err
	}

	s.state.Comments = comments
	if total := s.state.TotalPages(); s.state.Page > total {
		s.state.Page = total
	}
	if s.state.Page < 1 {
		s.state.Page = 1
	}
	s.mu.Unlock()

	s.renderer.Render(s.State())
	return nil
}

// SetSort changes the sort order, resets to the first page and reloads
func (s *CommentSection) SetSort(ctx context.Context, sort SortOrder) error {
	s.mu.Lock()
	s.state.Sort = sort
	s.state.Page = 1
	s.mu.Unlock()

	return s.LoadComments(ctx)
}

// SetPage moves to the given page and re-renders. Pagination is entirely
// client-side over the already-fetched list; no request is issued.
func (s *CommentSection) SetPage(page int) {
	s.mu.Lock()
	if page < 1 {
		page = 1
	}
	if total := s.state.TotalPages(); total > 0 && page > total {
		page = total
	}
	s.state.Page = page
	s.mu.Unlock()

	s.renderer.Render(s.State())
}

// SubmitComment validates the input, posts a new comment and reloads the
// list so the server-assigned id and ordering stay authoritative. Invalid
// input aborts before any network call.
func (s *CommentSection) SubmitComment(ctx context.Context, name, email, text string) error {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)

	if name == "" || text == "" {
		s.notifier.Error("Please fill in your name and comment.")
		return fmt.Errorf("%w: name and text are required", ErrValidation)
	}
	if len(text) > 500 {
		s.notifier.Error("Comment is too long (maximum 500 characters).")
		return fmt.Errorf("%w: text exceeds 500 characters", ErrValidation)
	}

	s.mu.Lock()
	itemID := s.state.ItemID
	s.mu.Unlock()

	endpoint := fmt.Sprintf("%s/api/portfolio/%s/comments", s.baseURL, url.PathEscape(itemID))
	if err := s.post(ctx, endpoint, commentPayload{Name: name, Email: email, Text: text}, nil); err != nil {
		s.log.Error().Err(err).Str("item", itemID).Msg("failed to post comment")
		s.notifier.Error(userMessage(err, "Failed to post comment. Please try again."))
		return err
	}

	s.notifier.Success("Comment posted!")
	return s.LoadComments(ctx)
}

// SubmitReply posts a reply on an existing comment with the same contract
// as SubmitComment. The reload re-renders the section, which collapses the
// reply form.
func (s *CommentSection) SubmitReply(ctx context.Context, commentID, name, email, text string) error {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)

	if name == "" || text == "" {
		s.notifier.Error("Please fill in your name and reply.")
		return fmt.Errorf("%w: name and text are required", ErrValidation)
	}
	if len(text) > 500 {
		s.notifier.Error("Reply is too long (maximum 500 characters).")
		return fmt.Errorf("%w: text exceeds 500 characters", ErrValidation)
	}

	s.mu.Lock()
	itemID := s.state.ItemID
	s.mu.Unlock()

	endpoint := fmt.Sprintf("%s/api/portfolio/%s/comments/%s/reply",
		s.baseURL, url.PathEscape(itemID), url.PathEscape(commentID))
	if err := s.post(ctx, endpoint, commentPayload{Name: name, Email: email, Text: text}, nil); err != nil {
		s.log.Error().Err(err).Str("comment", commentID).Msg("failed to post reply")
		s.notifier.Error(userMessage(err, "Failed to post reply. Please try again."))
		return err
	}

	s.notifier.Success("Reply posted!")
	return s.LoadComments(ctx)
}

// ToggleLike flips the visitor's like on a comment. On success only that
// comment's count and liked flag are patched, with no reload. Failures are
// logged but not surfaced; likes are best-effort and the visitor can
// simply click again.
func (s *CommentSection) ToggleLike(ctx context.Context, commentID string) error {
	s.mu.Lock()
	itemID := s.state.ItemID
	s.mu.Unlock()

	endpoint := fmt.Sprintf("%s/api/portfolio/%s/comments/%s/like",
		s.baseURL, url.PathEscape(itemID), url.PathEscape(commentID))

	var result struct {
		Liked      bool `json:"liked"`
		LikesCount int  `json:"likesCount"`
	}
	if err := s.post(ctx, endpoint, nil, &result); err != nil {
		s.log.Error().Err(err).Str("comment", commentID).Msg("failed to toggle like")
		return err
	}

	s.mu.Lock()
	for _, comment := range s.state.Comments {
		if comment.ID == commentID {
			comment.Liked = result.Liked
			comment.LikesCount = result.LikesCount
			break
		}
	}
	s.mu.Unlock()

	s.renderer.PatchLike(commentID, result.Liked, result.LikesCount)
	return nil
}

// SignGuestbook posts a guestbook entry. When the network call fails the
// entry is kept in the local fallback store instead of being lost.
func (s *CommentSection) SignGuestbook(ctx context.Context, name, message string) error {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)

	if name == "" || message == "" {
		s.notifier.Error("Please fill in your name and message.")
		return fmt.Errorf("%w: name and message are required", ErrValidation)
	}

	payload := guestbookPayload{Name: name, Message: message}
	err := s.post(ctx, s.baseURL+"/api/guestbook", payload, nil)
	if err == nil {
		s.notifier.Success("Thanks for signing the guestbook!")
		return nil
	}

	s.log.Error().Err(err).Msg("failed to sign guestbook")
	if s.fallback != nil {
		if saveErr := s.fallback.SaveEntry(models.GuestbookEntry{
			Name:      name,
			Message:   message,
			CreatedAt: time.Now().UTC(),
		}); saveErr == nil {
			s.notifier.Info("Could not reach the server. Your entry was saved locally.")
			return err
		}
	}

	s.notifier.Error(userMessage(err, "Failed to sign the guestbook. Please try again."))
	return err
}

type commentPayload struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Text  string `json:"text"`
}

type guestbookPayload struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// serverError carries a server-provided failure message
type serverError struct {
	status  int
	message string
}

func (e *serverError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("server error (status %d): %s", e.status, e.message)
	}
	return fmt.Sprintf("server error (status %d)", e.status)
}

// userMessage prefers the server-provided message, falling back to a
// generic string
func userMessage(err error, fallback string) string {
	var se *serverError
	if errors.As(err, &se) && se.message != "" {
		return se.message
	}
	return fallback
}

// get issues a GET and decodes the envelope's data into out
func (s *CommentSection) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return s.do(req, out)
}

// post issues a POST with an optional JSON payload and decodes the
// envelope's data into out when out is non-nil
func (s *CommentSection) post(ctx context.Context, endpoint string, payload, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, out)
}

// do executes the request and unwraps the response envelope. A non-2xx
// status and success:false are treated identically as failure.
func (s *CommentSection) do(req *http.Request, out interface{}) error {
	req.Header.Set("X-Visitor-ID", s.visitorID)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (decodeErr == nil && !env.Success) {
		return &serverError{status: resp.StatusCode, message: env.Message}
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
