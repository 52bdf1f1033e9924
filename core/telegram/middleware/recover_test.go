package middleware

import (
	"context"
	"testing"

	tele "gopkg.in/telebot.v4"
)

type panicCtx struct {
	recordingCtx
	acked bool
}

func (c *panicCtx) Callback() *tele.Callback { return &tele.Callback{ID: "1"} }
func (c *panicCtx) Respond(...*tele.CallbackResponse) error {
	c.acked = true
	return nil
}

func TestRecoverMiddlewareAcksCallback(t *testing.T) {
	c := &panicCtx{recordingCtx: recordingCtx{store: map[string]interface{}{
		"logger_ctx": context.Background(),
	}}}
	h := RecoverMiddleware(func(tele.Context) error { panic("boom") })
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.acked {
		t.Fatal("pending callback must be answered")
	}
}
