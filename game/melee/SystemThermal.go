package melee

// systemThermal applies overheat damage, sheds heat at the cooling rate
// down to the normal temperature, then adds the heat produced by movement.
// Temperature is capped at MaxTemperature.
func systemThermal(game *MeleeGame) {
	specs := game.specs

	for index := range game.bots {
		qr := game.bot(index)

		thermalAspect := game.CastThermal(qr.Components[game.thermalComponent])
		lifecycleAspect := game.CastLifecycle(qr.Components[game.lifecycleComponent])
		physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])

		if lifecycleAspect.IsAlive() && thermalAspect.GetTemperature() >= specs.DangerousTemperature {
			game.damageBot(qr, specs.OverheatDamage, -1)
		}

		temperature := thermalAspect.GetTemperature()
		if temperature > specs.NormalTemperature {
			temperature -= specs.CoolingRate
			if temperature < specs.NormalTemperature {
				temperature = specs.NormalTemperature
			}
		}

		temperature += specs.MovementHeat(physicalAspect.GetVelocity().Mag())

		if temperature > specs.MaxTemperature {
			temperature = specs.MaxTemperature
		}

		thermalAspect.SetTemperature(temperature)
	}
}
