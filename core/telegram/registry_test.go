package telegram

import (
	"testing"

	"github.com/m3rciful/cryptonews/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

func noop(tele.Context) error { return nil }

func TestRegistryCommands(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "Start"})
	reg.RegisterCommand("/stats", commands.Command{Handler: noop, Description: "Stats", AdminOnly: true})
	reg.RegisterCommand("/news", commands.Command{Handler: noop, Description: "News", Aliases: []string{"featured"}})
	reg.RegisterCommand("help", commands.Command{Handler: noop, Description: "no slash"})
	reg.RegisterCommand("/empty", commands.Command{Handler: noop})
	reg.RegisterCommand("/start", commands.Command{Handler: noop, Description: "dup"})

	if got := len(reg.Commands()); got != 3 {
		t.Fatalf("commands = %d, want 3", got)
	}
	if reg.Commands()["/start"].Description != "Start" {
		t.Fatal("duplicate registration must not replace the first command")
	}

	visible := reg.ListCommands(true)
	if len(visible) != 2 || visible[0].Text != "news" || visible[1].Text != "start" {
		t.Fatalf("visible commands = %+v", visible)
	}
	if all := reg.ListCommands(false); len(all) != 3 {
		t.Fatalf("all commands = %+v", all)
	}

	key, _, ok := reg.LookupCommand("featured")
	if !ok || key != "/news" {
		t.Fatalf("alias lookup = %q, %v", key, ok)
	}
	if _, _, ok := reg.LookupCommand("/missing"); ok {
		t.Fatal("unexpected command")
	}
}

func TestRegistryCallbackHandler(t *testing.T) {
	reg := NewRegistry()
	if reg.CallbackHandler() != nil {
		t.Fatal("no handler expected")
	}
	if reg.CallbackNotFound() == nil {
		t.Fatal("default not-found handler expected")
	}
	reg.SetCallbackHandler(noop)
	if reg.CallbackHandler() == nil {
		t.Fatal("handler not installed")
	}
	reg.SetCallbackNotFound(nil)
	if reg.CallbackNotFound() == nil {
		t.Fatal("nil must not clear the fallback")
	}
}
