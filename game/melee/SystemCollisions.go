package melee

import (
	"github.com/dhconnelly/rtreego"

	"github.com/gobots/gobots/common/utils/number"
	"github.com/gobots/gobots/common/utils/vector"
)

// systemCollisions resolves body/body overlaps in a single pass. All
// corrections are computed from a snapshot of the state at the start of the
// phase and accumulated per bot, then applied together; the outcome does
// not depend on the iteration order.
//
// Overlapping bodies are pushed apart along the center line by half the
// overlap each, exchange their velocity components along that line and
// their angular velocities, and take heat (and damage, per the symmetric
// damage setting) proportional to the closing speed.
func systemCollisions(game *MeleeGame) {
	specs := game.specs
	n := len(game.bots)

	if n < 2 {
		return
	}

	positions := make([]vector.Vector2, n)
	velocities := make([]vector.Vector2, n)
	angulars := make([]float64, n)

	for index := range game.bots {
		qr := game.bot(index)
		physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
		positions[index] = physicalAspect.GetPosition()
		velocities[index] = physicalAspect.GetVelocity()
		angulars[index] = physicalAspect.GetAngularVelocity()
	}

	rt := game.indexBodies()

	positionFix := make([]vector.Vector2, n)
	velocityFix := make([]vector.Vector2, n)
	angularFix := make([]float64, n)
	damage := make([]float64, n)
	heat := make([]float64, n)
	damager := make([]int, n)
	touched := make([]bool, n)

	for i := range damager {
		damager[i] = -1
	}

	for i := 0; i < n; i++ {
		rect, err := makeBoundingRect(positions[i], specs.Radius)
		if err != nil {
			continue
		}

		// each unordered pair is processed once
		self := i
		matching := rt.SearchIntersect(rect, func(results []rtreego.Spatial, object rtreego.Spatial) (refuse, abort bool) {
			return object.(*bodyNode).index <= self, false
		})

		for _, object := range matching {
			j := object.(*bodyNode).index

			relative := positions[i].Sub(positions[j])
			dist := relative.Mag()
			if dist == 0 || dist >= specs.Radius*2 {
				continue
			}

			correction := relative.SetMag((specs.Radius*2 - dist) / 2)
			positionFix[i] = positionFix[i].Add(correction)
			positionFix[j] = positionFix[j].Sub(correction)

			axis := relative.Normalize()
			exchanged := axis.MultScalar(velocities[j].Dot(axis) - velocities[i].Dot(axis))
			velocityFix[i] = velocityFix[i].Add(exchanged)
			velocityFix[j] = velocityFix[j].Sub(exchanged)

			angularFix[i] += angulars[j] - angulars[i]
			angularFix[j] += angulars[i] - angulars[j]

			closingSpeed := velocities[i].Sub(velocities[j]).Mag()
			pairDamage := specs.BotCollisionDamage(closingSpeed)

			if specs.SymmetricCollisionDamage {
				damage[i] += pairDamage
				damage[j] += pairDamage
			} else if velocities[i].Mag() >= velocities[j].Mag() {
				damage[i] += pairDamage
			} else {
				damage[j] += pairDamage
			}

			heat[i] += specs.BotCollisionHeat(closingSpeed)
			heat[j] += specs.BotCollisionHeat(closingSpeed)

			damager[i] = j
			damager[j] = i

			touched[i] = true
			touched[j] = true
		}
	}

	for index := range game.bots {
		if !touched[index] {
			continue
		}

		qr := game.bot(index)
		physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
		thermalAspect := game.CastThermal(qr.Components[game.thermalComponent])

		position := positions[index].Add(positionFix[index])
		position = clampIntoArena(position, specs)

		physicalAspect.SetPosition(position)
		physicalAspect.SetVelocity(velocities[index].Add(velocityFix[index]).Limit(specs.MaxSpeed))
		physicalAspect.SetAngularVelocity(number.MinAbs(angulars[index]+angularFix[index], specs.MaxAngularVelocity))

		thermalAspect.AddHeat(heat[index])
		game.damageBot(qr, damage[index], damager[index])
	}
}

func clampIntoArena(position vector.Vector2, specs Specs) vector.Vector2 {
	x, y := position.Get()
	x = number.Clamp(x, specs.Radius, specs.ArenaWidth-specs.Radius)
	y = number.Clamp(y, specs.Radius, specs.ArenaHeight-specs.Radius)
	return vector.MakeVector2(x, y)
}
