package melee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobots/gobots/common/utils/vector"
)

func stepUntil(game *MeleeGame, maxTicks int, done func() bool) {
	for tick := 0; tick < maxTicks && !done(); tick++ {
		game.Step(tick)
	}
}

func TestShotTravelsAndHits(t *testing.T) {
	game := newTestGame(2)
	specs := game.GetSpecs()

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(150, 100), 0)

	handler := game.NewHandler(0)
	handler.Shoot()

	stepUntil(game, 10, func() bool {
		return game.GetHealth(1) < specs.MaxHealth
	})

	assert.InDelta(t, specs.MaxHealth-specs.ShotDamage, game.GetHealth(1), 1e-9)
	assert.Equal(t, 0, testHealth(game, 1).GetLastDamager())
	assert.Len(t, game.projectilesView.Get(), 0)

	// impact pushes the target along the shot direction
	vx, _ := testPhysical(game, 1).GetVelocity().Get()
	assert.True(t, vx > 0)
}

func TestShotDoesNotHitOnSpawnTick(t *testing.T) {
	game := newTestGame(2)

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(150, 100), 0)

	handler := game.NewHandler(0)
	handler.Shoot()
	game.Step(0)

	assert.Equal(t, game.GetSpecs().MaxHealth, game.GetHealth(1))
	assert.Len(t, game.projectilesView.Get(), 1)
}

func TestShotLeavingArenaIsCulled(t *testing.T) {
	game := newTestGame(2)
	specs := game.GetSpecs()

	game.PlaceBot(0, vector.MakeVector2(specs.ArenaWidth-30, 240), 0)
	game.PlaceBot(1, vector.MakeVector2(50, 50), 0)

	handler := game.NewHandler(0)
	handler.Shoot()

	for tick := 0; tick < 6; tick++ {
		game.Step(tick)
	}

	assert.Len(t, game.projectilesView.Get(), 0)
	assert.Equal(t, specs.MaxHealth, game.GetHealth(1))
}

func TestShotKillCreditsShooter(t *testing.T) {
	game := newTestGame(2)
	specs := game.GetSpecs()

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(150, 100), 0)

	testHealth(game, 1).SetLife(specs.ShotDamage)

	handler := game.NewHandler(0)
	handler.Shoot()

	stepUntil(game, 10, func() bool {
		return !game.IsAlive(1)
	})

	assert.False(t, game.IsAlive(1))
	assert.Equal(t, 1, game.GetKills(0))
	assert.Equal(t, specs.MaxTemperature, testThermal(game, 1).GetTemperature())
}
