package bots

import (
	"math"

	"github.com/gobots/gobots/game/melee"
)

func init() {
	Register("snitram", Snitram)
}

// Snitram rushes forward with a fast-spinning cannon and a narrow scan
// arc. On contact it slows the cannon and fires continuously; near a wall
// it slams into reverse for a while.
func Snitram() melee.BotFunc {
	waitCounter := 0

	return func(handler *melee.Handler) {
		specs := handler.GetSpecs()

		if _, target := handler.Scan(); target != -1 {
			handler.RotateCannon(0.01)
			if handler.GetTemperature() < specs.DangerousTemperature-specs.HeatPerShot {
				handler.Shoot()
			}
		} else {
			handler.SetScanArc(math.Pi / 8)
			handler.Accelerate(0.8)
			handler.Turn(0.002)
			handler.RotateCannon(0.05)
		}

		if waitCounter > 0 {
			waitCounter--
		}

		x, y := handler.GetPosition().Get()
		nearWall := x >= specs.ArenaWidth-specs.Radius*2 || x <= specs.Radius*2 ||
			y >= specs.ArenaHeight-specs.Radius*2 || y <= specs.Radius*2

		if waitCounter == 0 && nearWall {
			waitCounter = 100
			handler.Accelerate(-1.0)
			handler.Turn(math.Pi)
		}
	}
}
