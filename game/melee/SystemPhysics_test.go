package melee

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobots/gobots/common/utils/vector"
)

func TestStraightLineMotion(t *testing.T) {
	game := newTestGame(1)

	game.PlaceBot(0, vector.MakeVector2(100, 100), 0)
	body := testPhysical(game, 0)
	body.SetVelocity(vector.MakeVector2(3, 4))

	systemPhysics(game)

	x, y := body.GetPosition().Get()
	assert.InDelta(t, 103, x, 1e-9)
	assert.InDelta(t, 104, y, 1e-9)
	assert.Equal(t, 100.0, game.GetHealth(0))
}

func TestWallBounceReflectsAndClamps(t *testing.T) {
	game := newTestGame(1)
	specs := game.GetSpecs()

	game.PlaceBot(0, vector.MakeVector2(15, 100), math.Pi)
	body := testPhysical(game, 0)
	body.SetVelocity(vector.MakeVector2(-10, 0))

	systemPhysics(game)

	x, y := body.GetPosition().Get()
	assert.InDelta(t, specs.Radius, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)

	vx, vy := body.GetVelocity().Get()
	assert.InDelta(t, 10, vx, 1e-9)
	assert.InDelta(t, 0, vy, 1e-9)

	assert.InDelta(t, specs.MaxHealth-specs.WallCollisionDamage(10), game.GetHealth(0), 1e-9)
	assert.InDelta(t, specs.WallCollisionHeat(10), testThermal(game, 0).GetTemperature(), 1e-9)
}

func TestCornerBounceCountsTwoImpacts(t *testing.T) {
	game := newTestGame(1)
	specs := game.GetSpecs()

	game.PlaceBot(0, vector.MakeVector2(15, 15), 0)
	body := testPhysical(game, 0)
	body.SetVelocity(vector.MakeVector2(-10, -10))

	systemPhysics(game)

	x, y := body.GetPosition().Get()
	assert.InDelta(t, specs.Radius, x, 1e-9)
	assert.InDelta(t, specs.Radius, y, 1e-9)

	vx, vy := body.GetVelocity().Get()
	assert.InDelta(t, 10, vx, 1e-9)
	assert.InDelta(t, 10, vy, 1e-9)

	impactSpeed := math.Sqrt(200)
	assert.InDelta(t, specs.MaxHealth-2*specs.WallCollisionDamage(impactSpeed), game.GetHealth(0), 1e-9)
}

func TestOrientationWrapsAroundPi(t *testing.T) {
	game := newTestGame(1)

	game.PlaceBot(0, vector.MakeVector2(100, 100), math.Pi-0.05)
	body := testPhysical(game, 0)
	body.SetAngularVelocity(0.2)

	systemPhysics(game)

	assert.InDelta(t, -math.Pi+0.15, body.GetOrientation(), 1e-9)
}
