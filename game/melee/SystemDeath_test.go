package melee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobots/gobots/common/utils/vector"
)

func TestDeathCreditsLastDamager(t *testing.T) {
	game := newTestGame(3)

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(300, 240), 0)
	game.PlaceBot(2, vector.MakeVector2(500, 400), 0)

	testHealth(game, 0).SetLife(0)
	testHealth(game, 0).SetLastDamager(2)

	systemDeath(game)

	assert.False(t, game.IsAlive(0))
	assert.Equal(t, 1, game.GetKills(2))
	assert.Equal(t, 0, game.GetKills(1))
}

func TestDeathEmitsEvent(t *testing.T) {
	game := newTestGame(2)

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(500, 400), 0)

	events := make([]DeathEvent, 0)
	game.OnEvent(func(event interface{}) {
		if death, ok := event.(DeathEvent); ok {
			events = append(events, death)
		}
	})

	testHealth(game, 0).SetLife(0)
	systemDeath(game)

	assert.Len(t, events, 1)
	assert.Equal(t, 0, events[0].Index)
	assert.Equal(t, -1, events[0].Killer)
	assert.False(t, events[0].Forfeit)
}

func TestExplosionPushesNearbyBots(t *testing.T) {
	game := newTestGame(3)
	specs := game.GetSpecs()

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(100+specs.ExplosionRadius/2, 100), 0)
	game.PlaceBot(2, vector.MakeVector2(500, 400), 0)

	testHealth(game, 0).SetLife(0)
	systemDeath(game)

	// bystander within the blast radius is pushed away from the wreck
	vx, _ := testPhysical(game, 1).GetVelocity().Get()
	assert.True(t, vx > 0)
	assert.InDelta(t, specs.ExplosionForce/2, vx, 1e-9)

	// a bot out of the blast radius is untouched
	assert.True(t, testPhysical(game, 2).GetVelocity().IsNull())
}

func TestForfeitGivesNoKillAndNoBlast(t *testing.T) {
	game := newTestGame(2)

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(115, 100), 0)

	events := make([]DeathEvent, 0)
	game.OnEvent(func(event interface{}) {
		if death, ok := event.(DeathEvent); ok {
			events = append(events, death)
		}
	})

	testHealth(game, 0).SetLastDamager(1)
	game.Forfeit(0)

	assert.False(t, game.IsAlive(0))
	assert.True(t, game.IsForfeited(0))
	assert.Equal(t, 0, game.GetKills(1))
	assert.True(t, testPhysical(game, 1).GetVelocity().IsNull())

	assert.Len(t, events, 1)
	assert.True(t, events[0].Forfeit)
	assert.Equal(t, -1, events[0].Killer)

	// a forfeited corpse stays dead through the death system
	systemDeath(game)
	assert.Len(t, events, 1)
}
