package client

import "github.com/rs/zerolog"

// Notifier surfaces user-visible notifications. The UI layer supplies an
// implementation; LogNotifier is the default when none is wired.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// Renderer projects page state into a visual result. Render replaces the
// whole view; PatchLike updates a single comment's like affordance so a
// like toggle does not repaint the page.
type Renderer interface {
	Render(state *PageState)
	PatchLike(commentID string, liked bool, likesCount int)
}

// LogNotifier writes notifications to the log
type LogNotifier struct {
	Log zerolog.Logger
}

func (n LogNotifier) Success(message string) { n.Log.Info().Msg(message) }
func (n LogNotifier) Error(message string)   { n.Log.Error().Msg(message) }
func (n LogNotifier) Info(message string)    { n.Log.Info().Msg(message) }

type noopRenderer struct{}

func (noopRenderer) Render(*PageState)           {}
func (noopRenderer) PatchLike(string, bool, int) {}
