package helpers

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/m3rciful/cryptonews/core/logger"
	"github.com/m3rciful/cryptonews/core/telegram/netutil"
	"github.com/m3rciful/cryptonews/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

var globalDispatcher atomic.Pointer[sender.Dispatcher]

// SetDispatcher wires the asynchronous sender used by helper functions.
func SetDispatcher(d *sender.Dispatcher) {
	globalDispatcher.Store(d)
}

func currentDispatcher() *sender.Dispatcher {
	return globalDispatcher.Load()
}

// queueCounter is implemented by contexts that count outbound calls. Queued
// counts a call handed to the dispatcher and returns the context the worker
// should use so the call is not counted again.
type queueCounter interface {
	Queued(edit, keyboard bool) tele.Context
}

func sendAsync(c tele.Context, action, endpoint string, opts *tele.SendOptions, run func(tele.Context) error) error {
	disp := currentDispatcher()
	if disp == nil {
		return run(c)
	}

	target := c
	if qc, ok := c.(queueCounter); ok {
		target = qc.Queued(endpoint == endpointEdit, opts != nil && opts.ReplyMarkup != nil)
	}
	ctx := BuildContext(c)
	err := disp.Enqueue(ctx, action, endpoint, func() error { return run(target) })
	if errors.Is(err, sender.ErrQueueFull) || errors.Is(err, sender.ErrQueueClosed) {
		logger.Warn(ctx, "tg.sender", "queue.fallback",
			slog.String("action", action),
			slog.String("endpoint", endpoint),
			slog.String("err", err.Error()),
		)
		return run(target)
	}
	return err
}

const (
	endpointSend = "sendMessage"
	endpointEdit = "editMessageText"
)

// SendText sends raw text (no parse mode) to the current recipient.
func SendText(c tele.Context, text string, opts ...*tele.SendOptions) error {
	var sendOpts *tele.SendOptions
	if len(opts) > 0 {
		sendOpts = opts[0]
	}
	return sendAsync(c, "send.text", endpointSend, sendOpts, func(c tele.Context) error {
		if sendOpts != nil {
			return c.Send(text, sendOpts)
		}
		return c.Send(text)
	})
}

// SendMD sends a new Markdown message with optional reply markup.
func SendMD(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return SendText(c, text, mdOptions(markup))
}

// EditMD replaces the text and keyboard of the message that carried the
// current callback. Without a callback message it falls back to sending.
func EditMD(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	opts := mdOptions(markup)
	if c.Callback() == nil || c.Callback().Message == nil {
		return SendText(c, text, opts)
	}
	err := sendAsync(c, "edit.text", endpointEdit, opts, func(c tele.Context) error {
		return c.Edit(text, opts)
	})
	if netutil.IsNotModified(err) {
		return nil
	}
	return err
}

// Ack answers the current callback query. A non-empty text is shown as a
// toast; an empty one just stops the client spinner.
func Ack(c tele.Context, text string) error {
	if c.Callback() == nil {
		return nil
	}
	if text == "" {
		return c.Respond()
	}
	return c.Respond(&tele.CallbackResponse{Text: text})
}

func mdOptions(markup []*tele.ReplyMarkup) *tele.SendOptions {
	var rm *tele.ReplyMarkup
	if len(markup) > 0 {
		rm = markup[0]
	}
	return &tele.SendOptions{ParseMode: tele.ModeMarkdown, ReplyMarkup: rm}
}
