package bots

import (
	"math"

	"github.com/gobots/gobots/game/melee"
)

func init() {
	Register("bigodines", Bigodines)
}

// Bigodines roams the arena at a steady pace with a drifting turn rate,
// steering away from the edges. On contact it stops to narrow its scan
// arc and opens fire once the cone is tight enough; taking a hit makes it
// lurch sideways out of the shot stream, alternating the dodge direction.
func Bigodines() melee.BotFunc {
	lastHealth := 0.0
	targetLocked := false
	turnRate := 0.1
	turnRates := []float64{-0.06, 0.09, -0.03, 0.1}
	turnCycle := 0
	tick := 0
	dodgeRight := true

	return func(handler *melee.Handler) {
		specs := handler.GetSpecs()
		tick++

		// healing is not supposed to happen; shrug the cannon at it
		if handler.GetHealth() > lastHealth {
			handler.RotateCannon(math.Pi / 2)
		}

		if distance, _ := handler.Scan(); distance < specs.VisionRange {
			targetLocked = true
			handler.SetScanArc(handler.GetScanArc() - 0.05)
			if handler.GetScanArc() < math.Pi/3 &&
				handler.GetTemperature() < specs.DangerousTemperature-specs.HeatPerShot {
				handler.Shoot()
			}
		} else {
			targetLocked = false
			if tick%100 == 0 {
				turnRate = turnRates[turnCycle%len(turnRates)]
				turnCycle++
			}
			if handler.GetScanArc() < math.Pi/3 {
				handler.SetScanArc(handler.GetScanArc() + 0.05)
			}
			handler.Turn(turnRate)
			handler.Accelerate(1.0)
		}

		if handler.GetHealth() < lastHealth {
			headroom := specs.MovementHeat(handler.GetSpeed() + specs.MaxAcceleration*2)
			if handler.GetTemperature() < specs.DangerousTemperature-headroom {
				if dodgeRight {
					handler.Accelerate(specs.MaxAcceleration * 2)
				} else {
					handler.Accelerate(-specs.MaxAcceleration * 2)
				}
				dodgeRight = !dodgeRight
			}
		}

		x, y := handler.GetPosition().Get()
		nearWall := x >= specs.ArenaWidth-specs.Radius*4 || x <= specs.Radius*4 ||
			y >= specs.ArenaHeight-specs.Radius*4 || y <= specs.Radius*4

		if !targetLocked && nearWall {
			handler.Turn(specs.MaxTurnRate)
		}

		lastHealth = handler.GetHealth()
	}
}
