// Package nav maps incoming commands and button tokens to actions and views.
package nav

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m3rciful/cryptonews/core/logger"
	"github.com/m3rciful/cryptonews/news/action"
	"github.com/m3rciful/cryptonews/news/view"
)

const component = "nav"

// Origin tells where an input came from.
type Origin int

const (
	// Command is a slash command typed by the user.
	Command Origin = iota
	// ButtonPress is an inline button carrying a callback token.
	ButtonPress
)

func (o Origin) String() string {
	if o == Command {
		return "command"
	}
	return "button"
}

// DeliveryMode says how the transport should show a view.
type DeliveryMode int

const (
	// Reply sends a new message.
	Reply DeliveryMode = iota
	// EditInPlace replaces the message that carried the pressed button.
	EditInPlace
)

func (m DeliveryMode) String() string {
	if m == EditInPlace {
		return "edit"
	}
	return "reply"
}

// Input is one user interaction.
type Input struct {
	Origin Origin
	Raw    string
}

// Result is the outcome of routing an input.
type Result struct {
	Entry  string
	Action action.Action
	View   view.View
	Mode   DeliveryMode
}

// Renderer produces a view for an action.
type Renderer interface {
	Render(a action.Action) view.View
}

// Router resolves inputs through a dispatch table and renders the result.
// It is safe for concurrent use once built.
type Router struct {
	table    *Table
	renderer Renderer
}

// NewRouter builds a router. A nil table means DefaultEntries.
func NewRouter(table *Table, renderer Renderer) (*Router, error) {
	if renderer == nil {
		return nil, fmt.Errorf("nav: renderer is required")
	}
	if table == nil {
		t, err := NewTable(DefaultEntries()...)
		if err != nil {
			return nil, err
		}
		table = t
	}
	return &Router{table: table, renderer: renderer}, nil
}

// Table exposes the dispatch table for listing.
func (r *Router) Table() *Table { return r.table }

// Route never fails: unknown input and resolver panics produce the
// Unhandled view.
func (r *Router) Route(ctx context.Context, in Input) Result {
	mode := Reply
	if in.Origin == ButtonPress {
		mode = EditInPlace
	}

	entry, ok := r.table.Match(in.Origin, in.Raw)
	act := action.NotHandled(in.Raw)
	if ok {
		act = r.resolve(ctx, entry, in.Raw)
	}

	res := Result{Entry: entry.Name, Action: act, View: r.render(ctx, act), Mode: mode}
	if logger.ShouldSampleDebug() {
		logger.Debug(ctx, component, "route",
			slog.String("origin", in.Origin.String()),
			slog.String("token", in.Raw),
			slog.String("entry", res.Entry),
			slog.String("action", act.String()),
			slog.String("mode", mode.String()),
		)
	}
	return res
}

func (r *Router) resolve(ctx context.Context, entry Entry, raw string) (act action.Action) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error(ctx, component, "resolve_panic",
				slog.String("entry", entry.Name),
				slog.String("token", raw),
				slog.Any("panic", rec),
			)
			act = action.NotHandled(raw)
		}
	}()
	return entry.Resolve(raw)
}

func (r *Router) render(ctx context.Context, act action.Action) (v view.View) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error(ctx, component, "render_panic",
				slog.String("action", act.String()),
				slog.Any("panic", rec),
			)
			v = view.ComingSoon()
		}
	}()
	return r.renderer.Render(act)
}
