package bot

import (
	"sync"

	tele "gopkg.in/telebot.v4"
)

type delivery struct {
	text string
	opts *tele.SendOptions
}

// fakeCtx records what handlers send. Methods the handlers never call fall
// through to the nil embedded interface.
type fakeCtx struct {
	tele.Context

	text string
	cb   *tele.Callback
	user *tele.User
	chat *tele.Chat

	mu    sync.Mutex
	store map[string]any
	sends []delivery
	edits []delivery
	acks  []string
}

func command(text string) *fakeCtx {
	return &fakeCtx{
		text: text,
		user: &tele.User{ID: 7},
		chat: &tele.Chat{ID: 70},
	}
}

func press(token string) *fakeCtx {
	return &fakeCtx{
		cb:   &tele.Callback{Data: token, Message: &tele.Message{ID: 11}},
		user: &tele.User{ID: 7},
		chat: &tele.Chat{ID: 70},
	}
}

func (c *fakeCtx) Text() string             { return c.text }
func (c *fakeCtx) Callback() *tele.Callback { return c.cb }
func (c *fakeCtx) Sender() *tele.User       { return c.user }
func (c *fakeCtx) Chat() *tele.Chat         { return c.chat }
func (c *fakeCtx) Update() tele.Update      { return tele.Update{ID: 1} }

func (c *fakeCtx) Get(key string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store[key]
}

func (c *fakeCtx) Set(key string, val interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = val
}

func (c *fakeCtx) Send(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sends = append(c.sends, toDelivery(what, opts))
	return nil
}

func (c *fakeCtx) Edit(what interface{}, opts ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.edits = append(c.edits, toDelivery(what, opts))
	return nil
}

func (c *fakeCtx) Respond(resp ...*tele.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	text := ""
	if len(resp) > 0 && resp[0] != nil {
		text = resp[0].Text
	}
	c.acks = append(c.acks, text)
	return nil
}

func toDelivery(what interface{}, opts []interface{}) delivery {
	d := delivery{}
	d.text, _ = what.(string)
	for _, o := range opts {
		if so, ok := o.(*tele.SendOptions); ok {
			d.opts = so
		}
	}
	return d
}
