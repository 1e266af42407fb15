package render

import (
	"bytes"
	"html/template"
	"sync"
	"time"

	"cosmicdevspace/app/client"
)

// sectionTemplate projects the comment page state into markup. All
// user-supplied text flows through html/template's contextual escaping;
// nothing is ever inserted as raw HTML.
const sectionTemplate = `{{define "likeButton"}}<button class="like-button{{if .Liked}} liked{{end}}" data-comment-id="{{.ID}}" aria-pressed="{{.Liked}}">&#9825; <span class="like-count">{{.LikesCount}}</span></button>{{end}}
{{define "replyForm"}}<form class="reply-form" data-comment-id="{{.ID}}" hidden>
  <input name="name" maxlength="100" placeholder="Your name" required>
  <input name="email" maxlength="200" type="email" placeholder="Email (optional)">
  <textarea name="text" maxlength="500" placeholder="Write a reply..." required></textarea>
  <div class="form-meta">
    <span class="emoji-bar">{{range .Emoji}}<button type="button" class="emoji" data-emoji="{{.}}">{{.}}</button>{{end}}</span>
    <span class="char-counter" data-max="500">0/500</span>
  </div>
  <button type="submit">Reply</button>
</form>{{end}}
{{define "comments"}}<div class="comments-section" data-item-id="{{.ItemID}}">
{{if .Empty}}  <p class="comments-empty">No comments yet. Be the first to comment!</p>
{{else}}  <ul class="comment-list">
{{range .Comments}}    <li class="comment" data-comment-id="{{.ID}}">
      <span class="avatar" style="background-color: {{.Avatar.Color}}">{{.Avatar.Initials}}</span>
      <span class="comment-author">{{.Name}}</span>
      <time class="comment-time">{{.TimeLabel}}</time>
      <p class="comment-text">{{.Text}}</p>
      {{template "likeButton" .}}
      <button class="reply-toggle" data-comment-id="{{.ID}}">Reply</button>
      {{template "replyForm" .}}
{{if .Replies}}      <ul class="reply-list">
{{range .Replies}}        <li class="reply">
          <span class="avatar" style="background-color: {{.Avatar.Color}}">{{.Avatar.Initials}}</span>
          <span class="reply-author">{{.Name}}</span>
          <time class="reply-time">{{.TimeLabel}}</time>
          <p class="reply-text">{{.Text}}</p>
        </li>
{{end}}      </ul>
{{end}}    </li>
{{end}}  </ul>
{{if gt .Pagination.TotalPages 1}}  <nav class="pagination">
    <button class="page-prev"{{if not .Pagination.HasPrev}} disabled{{end}}>Previous</button>
    <span class="page-label">Page {{.Pagination.Current}} of {{.Pagination.TotalPages}}</span>
    <button class="page-next"{{if not .Pagination.HasNext}} disabled{{end}}>Next</button>
  </nav>
{{end}}{{end}}</div>{{end}}`

var emojiBar = []string{"😀", "🚀", "🔥", "💡", "👏"}

// commentView is one comment prepared for the template
type commentView struct {
	ID         string
	Avatar     Avatar
	Name       string
	TimeLabel  string
	Text       string
	LikesCount int
	Liked      bool
	Emoji      []string
	Replies    []replyView
}

type replyView struct {
	Avatar    Avatar
	Name      string
	TimeLabel string
	Text      string
}

// sectionView is the full template payload
type sectionView struct {
	ItemID     string
	Empty      bool
	Comments   []commentView
	Pagination Pagination
}

// HTMLRenderer projects page state into an HTML fragment. It implements
// client.Renderer; the UI shell swaps the produced fragment into the page
// in a single binding pass.
type HTMLRenderer struct {
	tmpl *template.Template
	now  func() time.Time

	mu      sync.Mutex
	html    string
	patches map[string]string
}

// NewHTMLRenderer creates a renderer using the wall clock for relative
// timestamps
func NewHTMLRenderer() *HTMLRenderer {
	return NewHTMLRendererWithClock(time.Now)
}

// NewHTMLRendererWithClock creates a renderer with a fixed clock, used by
// tests to pin relative timestamps
func NewHTMLRendererWithClock(now func() time.Time) *HTMLRenderer {
	return &HTMLRenderer{
		tmpl:    template.Must(template.New("comments").Parse(sectionTemplate)),
		now:     now,
		patches: make(map[string]string),
	}
}

// Render projects the state's current page window into an HTML fragment,
// retrievable via HTML. An empty list renders the placeholder instead of
// an empty container.
func (r *HTMLRenderer) Render(state *client.PageState) {
	now := r.now()
	pagination := Paginate(len(state.Comments), client.PageSize, state.Page)

	view := sectionView{
		ItemID:     state.ItemID,
		Empty:      len(state.Comments) == 0,
		Pagination: pagination,
	}

	for _, comment := range state.Window() {
		cv := commentView{
			ID:         comment.ID,
			Avatar:     AvatarFor(comment.Name),
			Name:       comment.Name,
			TimeLabel:  FormatRelativeTime(comment.CreatedAt, now),
			Text:       comment.Text,
			LikesCount: comment.LikesCount,
			Liked:      comment.Liked,
			Emoji:      emojiBar,
		}
		for _, reply := range comment.Replies {
			cv.Replies = append(cv.Replies, replyView{
				Avatar:    AvatarFor(reply.Name),
				Name:      reply.Name,
				TimeLabel: FormatRelativeTime(reply.CreatedAt, now),
				Text:      reply.Text,
			})
		}
		view.Comments = append(view.Comments, cv)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "comments", view); err != nil {
		// Template and view are fully under our control; an execute
		// failure here is a programming error.
		panic(err)
	}

	r.mu.Lock()
	r.html = buf.String()
	r.patches = make(map[string]string)
	r.mu.Unlock()
}

// PatchLike re-renders a single comment's like button. The fragment is
// retrievable via LikePatch; the full page fragment is left untouched.
func (r *HTMLRenderer) PatchLike(commentID string, liked bool, likesCount int) {
	view := commentView{ID: commentID, Liked: liked, LikesCount: likesCount}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "likeButton", view); err != nil {
		panic(err)
	}

	r.mu.Lock()
	r.patches[commentID] = buf.String()
	r.mu.Unlock()
}

// HTML returns the most recently rendered fragment
func (r *HTMLRenderer) HTML() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.html
}

// LikePatch returns the latest like-button fragment for a comment, if any
func (r *HTMLRenderer) LikePatch(commentID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patch, ok := r.patches[commentID]
	return patch, ok
}
