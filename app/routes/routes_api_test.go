package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"cosmicdevspace/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioAPIFlow(t *testing.T) {
	handler, _ := setupTestRouter(t)

	var itemID string

	t.Run("create item", func(t *testing.T) {
		w, env := doJSON(t, handler, "POST", "/api/portfolio", map[string]string{
			"title":       "Star Mapper",
			"category":    "project",
			"description": "Maps stars",
		}, nil)

		require.Equal(t, http.StatusCreated, w.Code)
		require.True(t, env.Success)

		var item models.PortfolioItem
		require.NoError(t, json.Unmarshal(env.Data, &item))
		require.NotEmpty(t, item.ID)
		itemID = item.ID
	})

	t.Run("list items", func(t *testing.T) {
		w, env := doJSON(t, handler, "GET", "/api/portfolio", nil, nil)

		require.Equal(t, http.StatusOK, w.Code)
		var items []*models.PortfolioItem
		require.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, 1)
	})

	t.Run("update item", func(t *testing.T) {
		w, _ := doJSON(t, handler, "PUT", "/api/portfolio/"+itemID, map[string]string{
			"title":    "Star Mapper v2",
			"category": "project",
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("delete item", func(t *testing.T) {
		w, _ := doJSON(t, handler, "DELETE", "/api/portfolio/"+itemID, nil, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w, _ = doJSON(t, handler, "GET", "/api/portfolio/"+itemID, nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCommentAPIFlow(t *testing.T) {
	handler, db := setupTestRouter(t)
	item := seedPortfolioItem(t, db)

	var commentID string

	t.Run("create comment", func(t *testing.T) {
		w, env := doJSON(t, handler, "POST", "/api/portfolio/"+item.ID+"/comments", map[string]string{
			"name": "Ada",
			"text": "Nice project!",
		}, nil)

		require.Equal(t, http.StatusCreated, w.Code)
		var comment models.Comment
		require.NoError(t, json.Unmarshal(env.Data, &comment))
		require.NotEmpty(t, comment.ID)
		commentID = comment.ID
	})

	t.Run("reject whitespace text", func(t *testing.T) {
		w, env := doJSON(t, handler, "POST", "/api/portfolio/"+item.ID+"/comments", map[string]string{
			"name": "Ada",
			"text": "   ",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("reply to comment", func(t *testing.T) {
		w, env := doJSON(t, handler, "POST", "/api/portfolio/"+item.ID+"/comments/"+commentID+"/reply", map[string]string{
			"name": "Grace",
			"text": "Agreed!",
		}, nil)

		require.Equal(t, http.StatusCreated, w.Code)
		var comment models.Comment
		require.NoError(t, json.Unmarshal(env.Data, &comment))
		require.Len(t, comment.Replies, 1)
		assert.Equal(t, "Grace", comment.Replies[0].Name)
	})

	t.Run("like toggle", func(t *testing.T) {
		headers := map[string]string{"X-Visitor-ID": "visitor-1"}

		w, env := doJSON(t, handler, "POST", "/api/portfolio/"+item.ID+"/comments/"+commentID+"/like", nil, headers)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"liked":true`)

		w, env = doJSON(t, handler, "POST", "/api/portfolio/"+item.ID+"/comments/"+commentID+"/like", nil, headers)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(env.Data), `"liked":false`)
	})

	t.Run("like without visitor header", func(t *testing.T) {
		w, _ := doJSON(t, handler, "POST", "/api/portfolio/"+item.ID+"/comments/"+commentID+"/like", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list with liked flag", func(t *testing.T) {
		headers := map[string]string{"X-Visitor-ID": "visitor-2"}
		_, _ = doJSON(t, handler, "POST", "/api/portfolio/"+item.ID+"/comments/"+commentID+"/like", nil, headers)

		w, env := doJSON(t, handler, "GET", "/api/portfolio/"+item.ID+"/comments", nil, headers)
		require.Equal(t, http.StatusOK, w.Code)

		var comments []*models.Comment
		require.NoError(t, json.Unmarshal(env.Data, &comments))
		require.Len(t, comments, 1)
		assert.True(t, comments[0].Liked)
		assert.Equal(t, 1, comments[0].LikesCount)
	})
}

func TestGuestbookAPIFlow(t *testing.T) {
	handler, _ := setupTestRouter(t)

	t.Run("sign and list", func(t *testing.T) {
		w, env := doJSON(t, handler, "POST", "/api/guestbook", map[string]string{
			"name":    "Visitor",
			"message": "Hello from orbit",
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
		require.True(t, env.Success)

		w, env = doJSON(t, handler, "GET", "/api/guestbook", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var entries []*models.GuestbookEntry
		require.NoError(t, json.Unmarshal(env.Data, &entries))
		assert.Len(t, entries, 1)
	})
}
