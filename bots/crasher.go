package bots

import (
	"github.com/gobots/gobots/game/melee"
)

func init() {
	Register("crasher", Crasher)
}

// Crasher accelerates for a few ticks, then panics. Exercises the fault
// isolation of the round loop.
func Crasher() melee.BotFunc {
	ticks := 0

	return func(handler *melee.Handler) {
		ticks++
		if ticks > 5 {
			panic("crasher lived up to its name")
		}

		handler.Accelerate(0.2)
	}
}
