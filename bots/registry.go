// Package bots holds the built-in decision functions and the registry
// used by the command line to look them up by name.
package bots

import (
	"sort"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/gobots/gobots/game/melee"
)

// Factory builds a decision function carrying its own state. Each
// contestant gets its own instance, so two bots of the same breed never
// share state.
type Factory func() melee.BotFunc

var registry = make(map[string]Factory)

// Register adds a factory under the given name, replacing any previous
// one. An empty name gets a generated one; the effective name is
// returned.
func Register(name string, factory Factory) string {
	if name == "" {
		name = petname.Generate(2, "-")
	}

	registry[name] = factory

	return name
}

// Get returns the factory registered under name.
func Get(name string) (Factory, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, bettererrors.
			New("Unknown bot").
			SetContext("name", name).
			SetContext("known bots", strings.Join(Names(), ", "))
	}

	return factory, nil
}

// Names lists the registered bot names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
