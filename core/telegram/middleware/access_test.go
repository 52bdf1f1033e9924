package middleware

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

type senderCtx struct {
	tele.Context
	user *tele.User
}

func (c senderCtx) Sender() *tele.User { return c.user }

func TestAdminOnlyMiddleware(t *testing.T) {
	var handled, rejected int
	next := func(tele.Context) error { handled++; return nil }
	mw := AdminOnlyMiddleware(AdminOptions{
		AdminID:  42,
		OnReject: func(tele.Context) error { rejected++; return nil },
	})(next)

	_ = mw(senderCtx{user: &tele.User{ID: 42}})
	_ = mw(senderCtx{user: &tele.User{ID: 7}})
	_ = mw(senderCtx{})

	if handled != 1 || rejected != 2 {
		t.Fatalf("handled=%d rejected=%d", handled, rejected)
	}
}

func TestIsAdminWithoutConfiguredAdmin(t *testing.T) {
	if IsAdmin(senderCtx{user: &tele.User{ID: 0}}, 0) {
		t.Fatal("no admin configured means nobody is admin")
	}
}
