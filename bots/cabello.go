package bots

import (
	"math"

	"github.com/gobots/gobots/game/melee"
)

func init() {
	Register("cabello", Cabello)
}

// Cabello shuttles east-west across the arena, sweeping its cannon. On
// contact it narrows its scan arc and fires while the cannon is cool
// enough; near a vertical wall it waits a beat, then reverses.
func Cabello() melee.BotFunc {
	movingRight := false
	waitCounter := 30

	return func(handler *melee.Handler) {
		specs := handler.GetSpecs()

		// keep the hull aligned east or west
		direction := handler.GetDirection()
		if direction > 0.1 || direction < -0.1 {
			if direction < 0 {
				handler.Turn(math.Min(specs.MaxTurnRate, -direction))
			} else {
				handler.Turn(math.Max(-specs.MaxTurnRate, -direction))
			}
		}

		if _, target := handler.Scan(); target != -1 {
			handler.RotateCannon(0.01)
			if handler.GetTemperature() < specs.DangerousTemperature-specs.HeatPerShot {
				handler.Shoot()
			}
			handler.SetScanArc(handler.GetScanArc() - 0.05)
		} else {
			handler.SetScanArc(math.Pi / 4)
			if movingRight {
				handler.Accelerate(0.5)
			} else {
				handler.Accelerate(-0.5)
			}
			handler.RotateCannon(0.05)
		}

		if waitCounter > 0 {
			waitCounter--
		}

		x, _ := handler.GetPosition().Get()
		if waitCounter == 0 && (x >= specs.ArenaWidth-specs.Radius*2 || x <= specs.Radius*2) {
			movingRight = !movingRight
			waitCounter = 30
		}
	}
}
