package melee

import (
	"math"

	"github.com/gobots/gobots/common/utils/trigo"
)

// scan finds the nearest alive bot inside the scan cone of the scanner.
// The cone is centered on the cannon aim (heading plus cannon angle),
// spans the scan arc and reaches the vision range. The arc is widened per
// target by its apparent radius, so a body clipping the edge of the cone
// is still seen. Ties on distance go to the lowest index; the scanner
// itself is never reported.
func (game *MeleeGame) scan(scanner int) (int, float64) {
	specs := game.specs

	qr := game.bot(scanner)
	physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
	weaponAspect := game.CastWeapon(qr.Components[game.weaponComponent])

	origin := physicalAspect.GetPosition()
	facing := trigo.FullCircleAngleToSignedHalfCircleAngle(
		physicalAspect.GetOrientation() + weaponAspect.GetCannon(),
	)
	halfArc := weaponAspect.GetScanArc() / 2

	nearest := -1
	nearestDist := 0.0

	for index := range game.bots {
		if index == scanner {
			continue
		}

		otherQr := game.bot(index)

		if !game.CastLifecycle(otherQr.Components[game.lifecycleComponent]).IsAlive() {
			continue
		}

		otherPosition := game.CastPhysicalBody(otherQr.Components[game.physicalBodyComponent]).GetPosition()

		relative := otherPosition.Sub(origin)
		dist := relative.Mag()

		if dist-specs.Radius > specs.VisionRange {
			continue
		}

		apparentRadius := math.Atan2(specs.Radius, dist)
		offset := math.Abs(trigo.FullCircleAngleToSignedHalfCircleAngle(relative.Angle() - facing))

		if offset > halfArc+apparentRadius {
			continue
		}

		if nearest == -1 || dist < nearestDist {
			nearest = index
			nearestDist = dist
		}
	}

	return nearest, nearestDist
}
