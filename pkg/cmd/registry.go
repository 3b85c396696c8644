package cmd

import (
	"sort"
	"strings"
)

// Registry is the dispatch table: command name to command. Names are folded to
// lower case on the way in, so lookups are case-insensitive by construction.
// It does not perform dispatch; adapters look commands up and invoke them with
// their own context.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. A later registration under the same name replaces
// the earlier one. It reports whether an existing entry was shadowed.
func (r *Registry) Register(c Command) (shadowed bool) {
	key := strings.ToLower(c.Name())
	_, shadowed = r.commands[key]
	r.commands[key] = c
	return shadowed
}

// Lookup returns the command registered under name. Absence is not an error.
func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.commands[strings.ToLower(name)]
	return c, ok
}

// Get returns the command with the given name, or nil.
func (r *Registry) Get(name string) Command {
	c, _ := r.Lookup(name)
	return c
}

// Len returns the number of distinct names.
func (r *Registry) Len() int { return len(r.commands) }

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns all registered commands, sorted by name.
func (r *Registry) GetAll() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, name := range r.Names() {
		list = append(list, r.commands[name])
	}
	return list
}
