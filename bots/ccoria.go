package bots

import (
	"math"

	"github.com/gobots/gobots/game/melee"
)

func init() {
	Register("ccoria", Ccoria)
}

// Ccoria drifts backwards while sweeping its scan arc. On contact it
// aligns the hull with the edge of the arc so the cannon points at the
// target, creeps forward and fires while cool; losing the target turns it
// by half the arc and resumes the drift.
func Ccoria() melee.BotFunc {
	tracking := false
	accelRate := 0.0

	return func(handler *melee.Handler) {
		specs := handler.GetSpecs()

		if accelRate == 0 {
			accelRate = specs.MaxTurnRate * 0.01
		}

		if _, target := handler.Scan(); target != -1 {
			if !tracking {
				handler.Turn(handler.GetScanArc()/2 - handler.GetAngularVelocity())
			}
			handler.Accelerate(0.1)
			if handler.GetTemperature() < specs.DangerousTemperature-specs.HeatPerShot {
				handler.Shoot()
			}
			tracking = true
			handler.SetScanArc(handler.GetScanArc() - 0.01)
		} else if tracking {
			tracking = false
			handler.Turn(handler.GetScanArc() / 2)
			accelRate = specs.MaxTurnRate * 0.01
		} else {
			handler.Accelerate(-0.5)
			handler.Turn(accelRate - handler.GetAngularVelocity())
			handler.SetScanArc(math.Pi / 4)
			if accelRate < specs.MaxTurnRate {
				accelRate += 0.0001
			} else {
				accelRate = specs.MaxTurnRate * 0.01
			}
		}
	}
}
