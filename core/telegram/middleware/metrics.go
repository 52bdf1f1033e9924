package middleware

import (
	"sync/atomic"

	tele "gopkg.in/telebot.v4"
)

const countersKey = "update_counters"

// Counts summarises what a handler sent back for one update.
type Counts struct {
	Messages int
	Edits    int
	Toasts   int
	Keyboard bool
}

// counters is shared by pointer because sends may run on dispatcher workers.
type counters struct {
	messages, edits, toasts atomic.Int32
	kb                      atomic.Bool
}

// metricsContext counts successful outbound calls made through the context.
type metricsContext struct {
	tele.Context
	n *counters
}

func (m metricsContext) count(err error, slot *atomic.Int32, opts []interface{}) error {
	if err == nil {
		slot.Add(1)
		if hasKeyboard(opts) {
			m.n.kb.Store(true)
		}
	}
	return err
}

func hasKeyboard(opts []interface{}) bool {
	for _, o := range opts {
		switch v := o.(type) {
		case *tele.SendOptions:
			if v != nil && v.ReplyMarkup != nil {
				return true
			}
		case *tele.ReplyMarkup:
			if v != nil {
				return true
			}
		}
	}
	return false
}

func (m metricsContext) Send(what interface{}, opts ...interface{}) error {
	return m.count(m.Context.Send(what, opts...), &m.n.messages, opts)
}

func (m metricsContext) Reply(what interface{}, opts ...interface{}) error {
	return m.count(m.Context.Reply(what, opts...), &m.n.messages, opts)
}

func (m metricsContext) Edit(what interface{}, opts ...interface{}) error {
	return m.count(m.Context.Edit(what, opts...), &m.n.edits, opts)
}

func (m metricsContext) EditOrSend(what interface{}, opts ...interface{}) error {
	return m.count(m.Context.EditOrSend(what, opts...), &m.n.edits, opts)
}

func (m metricsContext) Respond(resp ...*tele.CallbackResponse) error {
	err := m.Context.Respond(resp...)
	if err == nil && len(resp) > 0 && resp[0] != nil && resp[0].Text != "" {
		m.n.toasts.Add(1)
	}
	return err
}

// Queued counts a call handed to the async dispatcher up front, so the
// summary logged when the handler returns already includes it. The returned
// context does not count again when the worker runs the call.
func (m metricsContext) Queued(edit, keyboard bool) tele.Context {
	if edit {
		m.n.edits.Add(1)
	} else {
		m.n.messages.Add(1)
	}
	if keyboard {
		m.n.kb.Store(true)
	}
	return m.Context
}

// MessageMetricsMiddleware wraps the context so handler summaries can report
// how many messages, edits and toasts an update produced.
func MessageMetricsMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if _, ok := c.Get(countersKey).(*counters); ok {
			return next(c)
		}
		n := &counters{}
		c.Set(countersKey, n)
		return next(metricsContext{Context: c, n: n})
	}
}

// GetCounters reads the counts collected so far for the current update.
func GetCounters(c tele.Context) Counts {
	n, ok := c.Get(countersKey).(*counters)
	if !ok {
		return Counts{}
	}
	return Counts{
		Messages: int(n.messages.Load()),
		Edits:    int(n.edits.Load()),
		Toasts:   int(n.toasts.Load()),
		Keyboard: n.kb.Load(),
	}
}
