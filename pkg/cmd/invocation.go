// Package cmd provides a transport-agnostic command core: a command is something
// with a name, description, and Run(ctx, invocation). How it is dispatched
// (Discord chat, console) is defined by adapters that build an Invocation.
package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Invocation carries the minimal input any command runner can pass: the raw
// positional arguments and an opaque payload. Adapters set Data to their reply
// context (e.g. *chat.Context).
type Invocation struct {
	Args []string
	Data any
}

// Arg returns the i-th argument or "" when absent.
func (inv *Invocation) Arg(i int) string {
	if inv == nil || i < 0 || i >= len(inv.Args) {
		return ""
	}
	return inv.Args[i]
}

// Int parses the i-th argument as an integer. An absent argument yields def.
func (inv *Invocation) Int(i int, def int) (int, error) {
	raw := inv.Arg(i)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("argument %d (%q) is not a number", i+1, raw)
	}
	return n, nil
}

// Rest joins every argument from i onward with single spaces.
func (inv *Invocation) Rest(i int) string {
	if inv == nil || i < 0 || i >= len(inv.Args) {
		return ""
	}
	return strings.Join(inv.Args[i:], " ")
}

// HandlerFunc is the uniform handler shape: one ordered argument sequence in,
// output produced as a side effect.
type HandlerFunc func(ctx context.Context, inv *Invocation) error

// Command is the universal contract: identity plus execution.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) error
}

type funcCommand struct {
	name        string
	description string
	fn          HandlerFunc
}

func (f *funcCommand) Name() string        { return f.name }
func (f *funcCommand) Description() string { return f.description }

func (f *funcCommand) Run(ctx context.Context, inv *Invocation) error {
	if f.fn == nil {
		return nil
	}
	return f.fn(ctx, inv)
}

// Func adapts a handler function into a Command. A nil fn produces a command
// that Invocable reports as not runnable.
func Func(name, description string, fn HandlerFunc) Command {
	return &funcCommand{name: name, description: description, fn: fn}
}

// Invocable reports whether c can actually be run. Wrappers are looked through.
func Invocable(c Command) bool {
	if c == nil {
		return false
	}
	if f, ok := Root(c).(*funcCommand); ok {
		return f != nil && f.fn != nil
	}
	return true
}
