package melee

import (
	"github.com/gobots/gobots/common/utils/number"
	"github.com/gobots/gobots/common/utils/vector"
)

// systemSteering turns the buffered intents into velocities. Friction
// applies before thrust, so a bot accelerating every tick converges on a
// terminal speed below MaxSpeed.
func systemSteering(game *MeleeGame) {
	specs := game.specs

	for _, entityresult := range game.botsView.Get() {
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		intentsAspect := game.CastIntents(entityresult.Components[game.intentsComponent])
		weaponAspect := game.CastWeapon(entityresult.Components[game.weaponComponent])
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])

		if !lifecycleAspect.IsAlive() {
			// dead hulls keep drifting, with a stronger friction, and the
			// cannon spins freely with the wreck
			physicalAspect.SetVelocity(physicalAspect.GetVelocity().MultScalar(specs.CorpseFriction))

			angular := physicalAspect.GetAngularVelocity() * specs.CorpseFriction
			physicalAspect.SetAngularVelocity(angular)
			weaponAspect.SetCannon(weaponAspect.GetCannon() + angular*2)
			continue
		}

		velocity := physicalAspect.GetVelocity().MultScalar(specs.Friction)
		if intentsAspect.acceleration != 0 {
			thrust := vector.
				MakeVector2FromAngle(physicalAspect.GetOrientation()).
				MultScalar(intentsAspect.acceleration)
			velocity = velocity.Add(thrust)
		}

		physicalAspect.SetVelocity(velocity.Limit(specs.MaxSpeed))

		angular := physicalAspect.GetAngularVelocity()*specs.AngularFriction + intentsAspect.turn
		physicalAspect.SetAngularVelocity(number.MinAbs(angular, specs.MaxAngularVelocity))

		weaponAspect.SetCannon(weaponAspect.GetCannon() + intentsAspect.cannon)

		if intentsAspect.hasArc {
			weaponAspect.SetScanArc(number.Clamp(intentsAspect.arc, specs.MinScanArc, specs.MaxScanArc))
		}
	}
}
