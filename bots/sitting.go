package bots

import (
	"github.com/gobots/gobots/game/melee"
)

func init() {
	Register("sitting", Sitting)
}

// Sitting never issues a command. Target practice.
func Sitting() melee.BotFunc {
	return func(handler *melee.Handler) {}
}
