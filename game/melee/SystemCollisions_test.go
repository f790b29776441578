package melee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobots/gobots/common/utils/vector"
)

func TestCollisionSeparatesAndSwapsVelocities(t *testing.T) {
	game := newTestGame(2)
	specs := game.GetSpecs()

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(115, 100), 0)

	bodyA := testPhysical(game, 0)
	bodyB := testPhysical(game, 1)
	bodyA.SetVelocity(vector.MakeVector2(2, 0))
	bodyB.SetVelocity(vector.MakeVector2(-2, 0))

	systemCollisions(game)

	ax, ay := bodyA.GetPosition().Get()
	bx, by := bodyB.GetPosition().Get()
	assert.InDelta(t, 97.5, ax, 1e-9)
	assert.InDelta(t, 100, ay, 1e-9)
	assert.InDelta(t, 117.5, bx, 1e-9)
	assert.InDelta(t, 100, by, 1e-9)

	// centers end up exactly one diameter apart
	dist := bodyB.GetPosition().Sub(bodyA.GetPosition()).Mag()
	assert.InDelta(t, specs.Radius*2, dist, 1e-9)

	avx, _ := bodyA.GetVelocity().Get()
	bvx, _ := bodyB.GetVelocity().Get()
	assert.InDelta(t, -2, avx, 1e-9)
	assert.InDelta(t, 2, bvx, 1e-9)

	closingSpeed := 4.0
	assert.InDelta(t, specs.MaxHealth-specs.BotCollisionDamage(closingSpeed), game.GetHealth(0), 1e-9)
	assert.InDelta(t, specs.MaxHealth-specs.BotCollisionDamage(closingSpeed), game.GetHealth(1), 1e-9)
	assert.InDelta(t, specs.BotCollisionHeat(closingSpeed), testThermal(game, 0).GetTemperature(), 1e-9)

	assert.Equal(t, 1, testHealth(game, 0).GetLastDamager())
	assert.Equal(t, 0, testHealth(game, 1).GetLastDamager())
}

func TestCollisionAsymmetricDamageHitsFasterBody(t *testing.T) {
	specs := DefaultSpecs()
	specs.SymmetricCollisionDamage = false

	game := newTestGameWithSpecs(specs, 2)

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(112, 100), 0)

	testPhysical(game, 0).SetVelocity(vector.MakeVector2(4, 0))

	systemCollisions(game)

	assert.InDelta(t, specs.MaxHealth-specs.BotCollisionDamage(4), game.GetHealth(0), 1e-9)
	assert.InDelta(t, specs.MaxHealth, game.GetHealth(1), 1e-9)
}

func TestNonOverlappingBodiesUntouched(t *testing.T) {
	game := newTestGame(2)

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(160, 100), 0)

	systemCollisions(game)

	x, _ := testPhysical(game, 0).GetPosition().Get()
	assert.InDelta(t, 100, x, 1e-9)
	assert.Equal(t, 100.0, game.GetHealth(0))
	assert.Equal(t, -1, testHealth(game, 0).GetLastDamager())
}

func TestCollisionNeverPushesOutOfArena(t *testing.T) {
	game := newTestGame(2)
	specs := game.GetSpecs()

	game.PlaceBot(0, vector.MakeVector2(specs.Radius, 100), 0)
	game.PlaceBot(1, vector.MakeVector2(specs.Radius+15, 100), 0)

	systemCollisions(game)

	x, _ := testPhysical(game, 0).GetPosition().Get()
	assert.True(t, x >= specs.Radius)
}
