package bots

import (
	"github.com/gobots/gobots/game/melee"
)

func init() {
	Register("gunner", Gunner)
}

// Gunner is a turret. It never moves; it sweeps the cannon with a narrow
// arc and fires every tick it has a target and enough thermal headroom.
func Gunner() melee.BotFunc {
	return func(handler *melee.Handler) {
		specs := handler.GetSpecs()

		handler.SetScanArc(specs.MinScanArc * 2)

		if _, target := handler.Scan(); target != -1 {
			if handler.GetTemperature() < specs.DangerousTemperature-specs.HeatPerShot {
				handler.Shoot()
			}
		} else {
			handler.RotateCannon(specs.MaxCannonTurnRate)
		}
	}
}
