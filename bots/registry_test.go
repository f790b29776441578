package bots

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobots/gobots/game/melee"
)

func TestGetKnownBot(t *testing.T) {
	factory, err := Get("sitting")
	assert.NoError(t, err)
	assert.NotNil(t, factory())
}

func TestGetUnknownBot(t *testing.T) {
	_, err := Get("does-not-exist")
	assert.Error(t, err)
}

func TestRegisterGeneratesNameWhenEmpty(t *testing.T) {
	name := Register("", func() melee.BotFunc {
		return func(handler *melee.Handler) {}
	})

	assert.NotEmpty(t, name)

	_, err := Get(name)
	assert.NoError(t, err)
}

func TestNamesAreSorted(t *testing.T) {
	names := Names()

	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "bigodines")
	assert.Contains(t, names, "cabello")
	assert.Contains(t, names, "william")
	assert.Contains(t, names, "gunner")
}
