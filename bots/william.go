package bots

import (
	"math"

	"github.com/gobots/gobots/game/melee"
)

func init() {
	Register("william", William)
}

const (
	williamSearching = iota
	williamLocked
	williamTryRight
	williamTryLeft
)

// William alternates between sweeping the arena and chasing what it sees.
// On a lock it accelerates toward the target while firing and narrowing
// its scan arc; losing the lock triggers a right-then-left search sweep.
// Bumping a wall turns it around, and taking a hit makes it surge forward
// for a while.
func William() melee.BotFunc {
	state := williamSearching
	thrust := 0.01
	count := 10
	waitTimer := 10
	lastHealth := 0.0
	turnRight := true

	return func(handler *melee.Handler) {
		specs := handler.GetSpecs()

		distance, target := handler.Scan()
		if target != -1 {
			if handler.GetTemperature() < specs.DangerousTemperature-specs.HeatPerShot {
				handler.Shoot()
			}
			handler.SetScanArc(handler.GetScanArc() - 0.01)
			if distance > specs.VisionRange/2 {
				handler.Accelerate(0.6)
			} else {
				handler.Accelerate(0.4)
			}
			state = williamLocked
		} else if state == williamLocked {
			state = williamTryRight
		}

		switch state {
		case williamTryRight:
			if count-1 > 0 {
				count--
				handler.Turn(specs.MaxTurnRate / 2)
			} else {
				state = williamTryLeft
				count = 10
			}
		case williamTryLeft:
			if count+9 > 0 {
				count--
				handler.Turn(-specs.MaxTurnRate / 2)
			} else {
				state = williamSearching
				count = 10
			}
		}

		if state == williamSearching {
			handler.Turn(specs.MaxTurnRate / 6)
			handler.Accelerate(thrust)
			if thrust >= specs.MaxAcceleration/2 {
				thrust = 0.1
			} else {
				thrust = 0.002
			}
			handler.SetScanArc(0.5)
		}

		if waitTimer > 0 {
			waitTimer--
		}

		x, y := handler.GetPosition().Get()
		nearWall := x >= specs.ArenaWidth-specs.Radius*2 || x <= specs.Radius*2 ||
			y >= specs.ArenaHeight-specs.Radius*2 || y <= specs.Radius*2

		if waitTimer == 0 && nearWall {
			waitTimer = int(math.Pi/specs.MaxTurnRate) * 2
			if turnRight {
				handler.Turn(math.Pi)
			} else {
				handler.Turn(-math.Pi)
			}
			turnRight = !turnRight
		} else if waitTimer == 0 && handler.GetHealth() <= lastHealth-specs.ShotDamage {
			thrust = specs.MaxAcceleration / 2.5
			waitTimer = 100
		}

		lastHealth = handler.GetHealth()
	}
}
