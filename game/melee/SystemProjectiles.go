package melee

import (
	"github.com/bytearena/ecs"

	"github.com/gobots/gobots/common/utils/trigo"
	"github.com/gobots/gobots/common/utils/vector"
)

// systemProjectiles advances every shot along its velocity and tests the
// swept segment against the bot bodies. A shot stops on the first body on
// its path (the owner included, corpses included); ties go to the lowest
// bot index. Shots leaving the arena are culled.
func systemProjectiles(game *MeleeGame) {
	projectiles := game.projectilesView.Get()
	if len(projectiles) == 0 {
		return
	}

	specs := game.specs
	rt := game.indexBodies()

	entitiesToRemove := make([]*ecs.Entity, 0)

	for _, entityresult := range projectiles {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		ownedAspect := game.CastOwned(entityresult.Components[game.ownedComponent])

		from := physicalAspect.GetPosition()
		velocity := physicalAspect.GetVelocity()
		to := from.Add(velocity)

		hitIndex := -1
		hitDist := 0.0

		rect, err := makeSegmentRect(from, to, specs.Radius)
		if err == nil {
			for _, object := range rt.SearchIntersect(rect) {
				index := object.(*bodyNode).index

				qr := game.bot(index)
				center := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent]).GetPosition()

				dist, ok := segmentCircleImpact(from, to, center, specs.Radius)
				if !ok {
					continue
				}

				if hitIndex == -1 || dist < hitDist || (dist == hitDist && index < hitIndex) {
					hitIndex = index
					hitDist = dist
				}
			}
		}

		if hitIndex >= 0 {
			game.hitBot(hitIndex, velocity, ownedAspect.GetOwner())
			entitiesToRemove = append(entitiesToRemove, entityresult.Entity)
			continue
		}

		physicalAspect.SetPosition(to)

		x, y := to.Get()
		if x < 0 || x > specs.ArenaWidth || y < 0 || y > specs.ArenaHeight {
			entitiesToRemove = append(entitiesToRemove, entityresult.Entity)
		}
	}

	if len(entitiesToRemove) > 0 {
		game.manager.DisposeEntities(entitiesToRemove...)
	}
}

// segmentCircleImpact returns the distance from the segment start to the
// first contact with the circle, if any. A start point already inside the
// circle is an immediate contact.
func segmentCircleImpact(from vector.Vector2, to vector.Vector2, center vector.Vector2, radius float64) (float64, bool) {
	if from.Sub(center).Mag() <= radius {
		return 0, true
	}

	impact := -1.0

	for _, point := range trigo.LineCircleIntersectionPoints(from, to, center, radius) {
		if !trigo.PointOnLineSegment(point, from, to) {
			continue
		}

		dist := point.Sub(from).Mag()
		if impact < 0 || dist < impact {
			impact = dist
		}
	}

	if impact < 0 {
		return 0, false
	}

	return impact, true
}

func (game *MeleeGame) hitBot(index int, shotVelocity vector.Vector2, owner int) {
	specs := game.specs
	qr := game.bot(index)

	physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
	thermalAspect := game.CastThermal(qr.Components[game.thermalComponent])
	lifecycleAspect := game.CastLifecycle(qr.Components[game.lifecycleComponent])

	game.damageBot(qr, specs.ShotDamage, owner)
	thermalAspect.AddHeat(specs.ShotCollisionHeat)

	pushed := physicalAspect.GetVelocity().Add(shotVelocity.MultScalar(specs.ShotImpactVelocity))
	physicalAspect.SetVelocity(pushed.Limit(specs.MaxSpeed))

	if !lifecycleAspect.IsAlive() {
		// shots make corpses spin
		physicalAspect.SetAngularVelocity(
			physicalAspect.GetAngularVelocity() + shotVelocity.Mag()*specs.ShotImpactSpin,
		)
	}
}
