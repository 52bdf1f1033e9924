package telegram

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/m3rciful/cryptonews/core/logger"
	"github.com/m3rciful/cryptonews/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

const wireComponent = "tg.wire"

// Registry holds bot commands, the callback handler and the text fallback.
// Every inline button press goes to a single callback handler; resolving the
// token is the handler's job.
type Registry struct {
	commands         map[string]commands.Command
	callback         tele.HandlerFunc
	callbackNotFound tele.HandlerFunc
	textFallback     tele.HandlerFunc
}

// NewRegistry creates an empty Registry with default fallbacks.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]commands.Command),
		callbackNotFound: func(c tele.Context) error {
			_ = c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
			return nil
		},
	}
}

// RegisterCommand adds a new command. Invalid and duplicate registrations
// are logged and skipped.
func (r *Registry) RegisterCommand(name string, cmd commands.Command) {
	ctx := context.Background()
	switch {
	case r == nil || name == "" || cmd.Handler == nil || cmd.Description == "":
		logger.Warn(ctx, wireComponent, "register.command.skip",
			slog.String("name", name),
			slog.String("reason", "invalid"),
		)
		return
	case name[0] != '/':
		logger.Warn(ctx, wireComponent, "register.command.skip",
			slog.String("name", name),
			slog.String("reason", "no_slash_prefix"),
		)
		return
	}
	if _, exists := r.commands[name]; exists {
		logger.Warn(ctx, wireComponent, "register.command.duplicate", slog.String("name", name))
		return
	}
	r.commands[name] = cmd
}

// ListCommands returns a slice of tele.Command, optionally filtering out hidden and admin-only commands.
func (r *Registry) ListCommands(visibleOnly bool) []tele.Command {
	var list []tele.Command
	for cmd, meta := range r.commands {
		if visibleOnly && !meta.Listed() {
			continue
		}
		list = append(list, tele.Command{Text: strings.TrimPrefix(cmd, "/"), Description: meta.Description})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Text < list[j].Text })
	return list
}

// LookupCommand searches for a command by name or its aliases and returns the canonical key with metadata if found.
func (r *Registry) LookupCommand(name string) (string, commands.Command, bool) {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	if cmd, ok := r.commands[name]; ok {
		return name, cmd, true
	}
	for key, cmd := range r.commands {
		if cmd.Answers(name) {
			return key, cmd, true
		}
	}
	return "", commands.Command{}, false
}

// Commands returns all registered commands.
func (r *Registry) Commands() map[string]commands.Command {
	return r.commands
}

// SetCallbackHandler installs the handler for every callback query.
func (r *Registry) SetCallbackHandler(h tele.HandlerFunc) {
	r.callback = h
}

// CallbackHandler returns the installed callback handler, if any.
func (r *Registry) CallbackHandler() tele.HandlerFunc {
	return r.callback
}

// SetCallbackNotFound replaces the fallback used when no callback handler is installed.
func (r *Registry) SetCallbackNotFound(h tele.HandlerFunc) {
	if h != nil {
		r.callbackNotFound = h
	}
}

// CallbackNotFound returns the current fallback callback handler.
func (r *Registry) CallbackNotFound() tele.HandlerFunc {
	return r.callbackNotFound
}

// SetTextFallback sets a global fallback handler for unknown text messages.
func (r *Registry) SetTextFallback(h tele.HandlerFunc) {
	r.textFallback = h
}

// TextFallback returns the current text fallback handler.
func (r *Registry) TextFallback() tele.HandlerFunc {
	return r.textFallback
}

// SetupCommands publishes the visible commands to the Telegram command menu.
func SetupCommands(bot *tele.Bot, reg *Registry) {
	if bot == nil || reg == nil {
		return
	}
	list := reg.ListCommands(true)
	if err := bot.SetCommands(list); err != nil {
		logger.Error(context.Background(), wireComponent, "register.commands.set_failed",
			slog.String("err", err.Error()),
		)
		return
	}
	logger.Debug(context.Background(), wireComponent, "register.commands.set", slog.Int("count", len(list)))
}
