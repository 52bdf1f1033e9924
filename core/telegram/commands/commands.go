// Package commands describes slash commands as the registry stores them.
package commands

import (
	"slices"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Command is a registered slash command.
type Command struct {
	Handler     tele.HandlerFunc
	Description string
	// AdminOnly commands are wrapped with the admin guard and kept off the menu.
	AdminOnly bool
	Hidden    bool
	// Aliases are extra names, with or without the leading slash.
	Aliases []string
}

// Listed reports whether the command belongs in the public command menu.
func (c Command) Listed() bool {
	return !c.Hidden && !c.AdminOnly
}

// Answers reports whether name is one of the command's aliases.
func (c Command) Answers(name string) bool {
	name = strings.TrimPrefix(name, "/")
	return slices.ContainsFunc(c.Aliases, func(alias string) bool {
		return strings.TrimPrefix(alias, "/") == name
	})
}
