package commands

import "testing"

func TestCommandListedAndAliases(t *testing.T) {
	cmd := Command{Aliases: []string{"featured", "/top"}}
	if !cmd.Listed() {
		t.Fatal("plain command must be listed")
	}
	if (Command{AdminOnly: true}).Listed() || (Command{Hidden: true}).Listed() {
		t.Fatal("admin and hidden commands stay off the menu")
	}
	for _, name := range []string{"featured", "/featured", "top", "/top"} {
		if !cmd.Answers(name) {
			t.Fatalf("alias %q not matched", name)
		}
	}
	if cmd.Answers("/news") {
		t.Fatal("unexpected alias match")
	}
}
