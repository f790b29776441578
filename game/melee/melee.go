package melee

import (
	"math/rand"

	"github.com/bytearena/ecs"
)

// MeleeGame holds the whole state of one free-for-all round: the entity
// manager, the bots in registration order and the tick counter. All systems
// run synchronously inside Step; the game is not safe for concurrent use.
type MeleeGame struct {
	ticknum int
	specs   Specs
	rng     *rand.Rand

	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	healthComponent       *ecs.Component
	thermalComponent      *ecs.Component
	weaponComponent       *ecs.Component
	intentsComponent      *ecs.Component
	playerComponent       *ecs.Component
	lifecycleComponent    *ecs.Component
	ownedComponent        *ecs.Component
	projectileComponent   *ecs.Component

	botsView        *ecs.View
	projectilesView *ecs.View

	botTag ecs.Tag

	bots []*ecs.Entity

	onEvent func(event interface{})
}

func NewMeleeGame(specs Specs, rng *rand.Rand) *MeleeGame {
	manager := ecs.NewManager()

	game := &MeleeGame{
		specs:   specs,
		rng:     rng,
		manager: manager,

		physicalBodyComponent: manager.NewComponent(),
		healthComponent:       manager.NewComponent(),
		thermalComponent:      manager.NewComponent(),
		weaponComponent:       manager.NewComponent(),
		intentsComponent:      manager.NewComponent(),
		playerComponent:       manager.NewComponent(),
		lifecycleComponent:    manager.NewComponent(),
		ownedComponent:        manager.NewComponent(),
		projectileComponent:   manager.NewComponent(),

		bots: make([]*ecs.Entity, 0),

		onEvent: func(event interface{}) {},
	}

	game.botTag = ecs.BuildTag(
		game.physicalBodyComponent,
		game.healthComponent,
		game.thermalComponent,
		game.weaponComponent,
		game.intentsComponent,
		game.playerComponent,
		game.lifecycleComponent,
	)

	game.botsView = manager.CreateView(game.botTag)
	game.projectilesView = manager.CreateView(ecs.BuildTag(
		game.projectileComponent,
		game.physicalBodyComponent,
		game.ownedComponent,
	))

	return game
}

func (game *MeleeGame) GetSpecs() Specs {
	return game.specs
}

func (game *MeleeGame) GetTick() int {
	return game.ticknum
}

func (game *MeleeGame) NumBots() int {
	return len(game.bots)
}

// OnEvent registers the callback notified of game events (deaths,
// forfeits). The callback runs synchronously inside Step.
func (game *MeleeGame) OnEvent(cbk func(event interface{})) {
	game.onEvent = cbk
}

func (game *MeleeGame) emit(event interface{}) {
	game.onEvent(event)
}

func (game *MeleeGame) getEntity(id ecs.EntityID, tag ecs.Tag) *ecs.QueryResult {
	return game.manager.GetEntityByID(id, tag)
}

func (game *MeleeGame) bot(index int) *ecs.QueryResult {
	return game.getEntity(game.bots[index].GetID(), game.botTag)
}

func (game *MeleeGame) IsAlive(index int) bool {
	qr := game.bot(index)
	return game.CastLifecycle(qr.Components[game.lifecycleComponent]).IsAlive()
}

func (game *MeleeGame) IsForfeited(index int) bool {
	qr := game.bot(index)
	return game.CastLifecycle(qr.Components[game.lifecycleComponent]).IsForfeited()
}

func (game *MeleeGame) AliveCount() int {
	count := 0

	for index := range game.bots {
		if game.IsAlive(index) {
			count++
		}
	}

	return count
}

func (game *MeleeGame) GetName(index int) string {
	qr := game.bot(index)
	return game.CastPlayer(qr.Components[game.playerComponent]).GetName()
}

func (game *MeleeGame) GetKills(index int) int {
	qr := game.bot(index)
	return game.CastPlayer(qr.Components[game.playerComponent]).GetKills()
}

func (game *MeleeGame) GetShots(index int) int {
	qr := game.bot(index)
	return game.CastWeapon(qr.Components[game.weaponComponent]).GetShots()
}

func (game *MeleeGame) GetHealth(index int) float64 {
	qr := game.bot(index)
	return game.CastHealth(qr.Components[game.healthComponent]).GetLife()
}

// Forfeit takes a bot out of the round without an explosion and without
// crediting a kill to anyone; used when a decision function faults.
func (game *MeleeGame) Forfeit(index int) {
	qr := game.bot(index)

	lifecycleAspect := game.CastLifecycle(qr.Components[game.lifecycleComponent])
	if !lifecycleAspect.IsAlive() {
		return
	}

	healthAspect := game.CastHealth(qr.Components[game.healthComponent])
	playerAspect := game.CastPlayer(qr.Components[game.playerComponent])

	lifecycleAspect.SetDead(game.ticknum)
	lifecycleAspect.SetForfeited()
	healthAspect.SetLife(0)

	game.emit(DeathEvent{
		Index:   index,
		Name:    playerAspect.GetName(),
		Killer:  -1,
		Tick:    game.ticknum,
		Forfeit: true,
	})
}

func (game *MeleeGame) damageBot(qr *ecs.QueryResult, damage float64, damager int) {
	if damage <= 0 {
		return
	}

	lifecycleAspect := game.CastLifecycle(qr.Components[game.lifecycleComponent])
	if !lifecycleAspect.IsAlive() {
		return
	}

	healthAspect := game.CastHealth(qr.Components[game.healthComponent])
	healthAspect.AddLife(-damage)

	if damager >= 0 {
		healthAspect.SetLastDamager(damager)
	}
}

// Step advances the simulation by one tick. Decision functions must have
// been invoked beforehand; Step only consumes the buffered intents.
func (game *MeleeGame) Step(ticknum int) {
	game.ticknum = ticknum

	systemSteering(game)
	systemPhysics(game)
	systemCollisions(game)
	systemProjectiles(game)
	systemShooting(game)
	systemThermal(game)
	systemDeath(game)
	systemIntentsReset(game)
}

func systemIntentsReset(game *MeleeGame) {
	for _, qr := range game.botsView.Get() {
		game.CastIntents(qr.Components[game.intentsComponent]).Reset()
	}
}
