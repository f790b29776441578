package melee

import (
	"github.com/gobots/gobots/common/utils/vector"
)

// systemPhysics integrates positions and orientations, then handles the
// arena walls. A wall hit clamps the body inside the arena, reflects the
// velocity component normal to the wall and costs damage and heat
// proportional to the impact speed. A corner hit counts as two impacts.
func systemPhysics(game *MeleeGame) {
	specs := game.specs

	for index := range game.bots {
		qr := game.bot(index)

		physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
		thermalAspect := game.CastThermal(qr.Components[game.thermalComponent])

		position := physicalAspect.GetPosition().Add(physicalAspect.GetVelocity())
		physicalAspect.SetOrientation(physicalAspect.GetOrientation() + physicalAspect.GetAngularVelocity())

		x, y := position.Get()
		vx, vy := physicalAspect.GetVelocity().Get()
		impactSpeed := physicalAspect.GetVelocity().Mag()
		radius := physicalAspect.GetRadius()

		impacts := 0

		if x < radius {
			x = radius
			vx = -vx
			impacts++
		} else if x > specs.ArenaWidth-radius {
			x = specs.ArenaWidth - radius
			vx = -vx
			impacts++
		}

		if y < radius {
			y = radius
			vy = -vy
			impacts++
		} else if y > specs.ArenaHeight-radius {
			y = specs.ArenaHeight - radius
			vy = -vy
			impacts++
		}

		physicalAspect.SetPosition(vector.MakeVector2(x, y))

		if impacts > 0 {
			physicalAspect.SetVelocity(vector.MakeVector2(vx, vy))

			for i := 0; i < impacts; i++ {
				game.damageBot(qr, specs.WallCollisionDamage(impactSpeed), -1)
				thermalAspect.AddHeat(specs.WallCollisionHeat(impactSpeed))
			}
		}
	}
}
