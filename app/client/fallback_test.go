package client

import (
	"context"
	"testing"
	"time"

	"cosmicdevspace/app/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFallbackStore(t *testing.T) *FallbackStore {
	t.Helper()
	store, err := NewFallbackStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestVisitorID(t *testing.T) {
	store := setupFallbackStore(t)

	first, err := store.VisitorID()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := store.VisitorID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPendingEntries(t *testing.T) {
	store := setupFallbackStore(t)

	entries, err := store.PendingEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)

	base := time.Now().UTC()
	require.NoError(t, store.SaveEntry(models.GuestbookEntry{
		Name: "Second", Message: "later", CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, store.SaveEntry(models.GuestbookEntry{
		Name: "First", Message: "earlier", CreatedAt: base,
	}))

	entries, err = store.PendingEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, "Second", entries[1].Name)
	assert.NotEmpty(t, entries[0].ID)
}

func TestSignGuestbookFallsBackLocally(t *testing.T) {
	store := setupFallbackStore(t)
	notifier := &recordingNotifier{}

	// An unreachable base URL forces every request to fail.
	section := NewCommentSection(Options{
		BaseURL:  "http://127.0.0.1:1",
		ItemID:   "item1",
		Notifier: notifier,
		Fallback: store,
		Logger:   zerolog.Nop(),
	})

	err := section.SignGuestbook(context.Background(), "Visitor", "Hello")
	require.Error(t, err)

	entries, pendingErr := store.PendingEntries()
	require.NoError(t, pendingErr)
	require.Len(t, entries, 1)
	assert.Equal(t, "Visitor", entries[0].Name)
	assert.Equal(t, "Hello", entries[0].Message)

	assert.Contains(t, notifier.infos, "Could not reach the server. Your entry was saved locally.")
}

func TestSignGuestbookValidation(t *testing.T) {
	notifier := &recordingNotifier{}
	section := NewCommentSection(Options{
		BaseURL:  "http://127.0.0.1:1",
		ItemID:   "item1",
		Notifier: notifier,
		Logger:   zerolog.Nop(),
	})

	err := section.SignGuestbook(context.Background(), "", "Hello")
	require.ErrorIs(t, err, ErrValidation)
	assert.NotEmpty(t, notifier.errors)
}
