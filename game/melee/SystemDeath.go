package melee

import (
	"math"
)

// systemDeath turns bots whose life reached zero into corpses. The last
// damager, if any, gets the kill. The wreck explodes, pushing every alive
// bot within the blast radius away with a force decaying linearly with
// distance.
func systemDeath(game *MeleeGame) {
	specs := game.specs

	for index := range game.bots {
		qr := game.bot(index)

		healthAspect := game.CastHealth(qr.Components[game.healthComponent])
		lifecycleAspect := game.CastLifecycle(qr.Components[game.lifecycleComponent])

		if !lifecycleAspect.IsAlive() || healthAspect.GetLife() > 0 {
			continue
		}

		physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])
		thermalAspect := game.CastThermal(qr.Components[game.thermalComponent])
		playerAspect := game.CastPlayer(qr.Components[game.playerComponent])

		lifecycleAspect.SetDead(game.ticknum)

		killer := healthAspect.GetLastDamager()
		if killer >= 0 && killer != index {
			killerQr := game.bot(killer)
			game.CastPlayer(killerQr.Components[game.playerComponent]).AddKill()
		}

		// burning wreck
		thermalAspect.SetTemperature(specs.MaxTemperature)
		physicalAspect.SetVelocity(physicalAspect.GetVelocity().MultScalar(0.5))
		physicalAspect.SetAngularVelocity(game.rng.Float64()*math.Pi - math.Pi/2)

		blastCenter := physicalAspect.GetPosition()

		for other := range game.bots {
			if other == index {
				continue
			}

			otherQr := game.bot(other)
			otherLifecycle := game.CastLifecycle(otherQr.Components[game.lifecycleComponent])
			if !otherLifecycle.IsAlive() {
				continue
			}

			otherPhysical := game.CastPhysicalBody(otherQr.Components[game.physicalBodyComponent])

			away := otherPhysical.GetPosition().Sub(blastCenter)
			dist := away.Mag()
			if dist <= 0 || dist >= specs.ExplosionRadius {
				continue
			}

			impulse := away.SetMag(specs.ExplosionForce * (1 - dist/specs.ExplosionRadius))
			otherPhysical.SetVelocity(otherPhysical.GetVelocity().Add(impulse).Limit(specs.MaxSpeed))
		}

		game.emit(DeathEvent{
			Index:  index,
			Name:   playerAspect.GetName(),
			Killer: killer,
			Tick:   game.ticknum,
		})
	}
}
