package melee

import (
	"math"

	"github.com/bytearena/ecs"

	"github.com/gobots/gobots/common/utils/vector"
)

// NewEntityBot registers a bot on the arena floor. Bots are assigned
// indexes in registration order; the index is the identity used everywhere
// else (scans, kills, outcomes).
func (game *MeleeGame) NewEntityBot(name string) *ecs.Entity {
	specs := game.specs
	index := len(game.bots)

	bot := game.manager.NewEntity()
	bot.
		AddComponent(game.physicalBodyComponent, &PhysicalBody{
			position:    game.spawnPosition(),
			orientation: game.rng.Float64()*2*math.Pi - math.Pi,
			radius:      specs.Radius,
		}).
		AddComponent(game.healthComponent, NewHealth(specs.MaxHealth)).
		AddComponent(game.thermalComponent, NewThermal(specs.NormalTemperature)).
		AddComponent(game.weaponComponent, NewWeapon(specs.MinScanArc)).
		AddComponent(game.intentsComponent, &Intents{}).
		AddComponent(game.playerComponent, NewPlayer(index, name)).
		AddComponent(game.lifecycleComponent, NewLifecycle())

	game.bots = append(game.bots, bot)

	return bot
}

// spawnPosition draws positions until one clears every other bot by the
// spawn separation, giving up on separation after a hundred attempts when
// the arena is too crowded.
func (game *MeleeGame) spawnPosition() vector.Vector2 {
	specs := game.specs

	var candidate vector.Vector2

	for attempt := 0; attempt < 100; attempt++ {
		candidate = vector.MakeVector2(
			specs.Radius+game.rng.Float64()*(specs.ArenaWidth-specs.Radius*2),
			specs.Radius+game.rng.Float64()*(specs.ArenaHeight-specs.Radius*2),
		)

		separated := true

		for index := range game.bots {
			qr := game.bot(index)
			other := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent]).GetPosition()

			if candidate.Sub(other).Mag() < specs.SpawnSeparation {
				separated = false
				break
			}
		}

		if separated {
			break
		}
	}

	return candidate
}

// PlaceBot teleports a bot to a known position and heading, zeroing its
// motion; useful to set up reproducible situations.
func (game *MeleeGame) PlaceBot(index int, position vector.Vector2, orientation float64) {
	qr := game.bot(index)
	physicalAspect := game.CastPhysicalBody(qr.Components[game.physicalBodyComponent])

	physicalAspect.SetPosition(position)
	physicalAspect.SetOrientation(orientation)
	physicalAspect.SetVelocity(vector.MakeNullVector2())
	physicalAspect.SetAngularVelocity(0)
}
