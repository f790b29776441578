package melee

// systemShooting spawns one projectile per bot having asked to fire this
// tick, regardless of how many times Shoot was called. Firing heats the
// cannon; there is no firing lockout, heat is the only brake.
func systemShooting(game *MeleeGame) {
	specs := game.specs

	for _, entityresult := range game.botsView.Get() {
		intentsAspect := game.CastIntents(entityresult.Components[game.intentsComponent])
		lifecycleAspect := game.CastLifecycle(entityresult.Components[game.lifecycleComponent])

		if !intentsAspect.fire || !lifecycleAspect.IsAlive() {
			continue
		}

		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])
		weaponAspect := game.CastWeapon(entityresult.Components[game.weaponComponent])
		thermalAspect := game.CastThermal(entityresult.Components[game.thermalComponent])
		playerAspect := game.CastPlayer(entityresult.Components[game.playerComponent])

		thermalAspect.AddHeat(specs.HeatPerShot)
		weaponAspect.IncrementShots()

		game.NewEntityProjectile(playerAspect.GetIndex(), physicalAspect, weaponAspect)
	}
}
