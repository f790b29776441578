package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobots/gobots/bots"
	"github.com/gobots/gobots/common/utils/vector"
	"github.com/gobots/gobots/game/melee"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestRoundRequiresTwoContestants(t *testing.T) {
	_, err := NewRound(melee.DefaultSpecs(), []Contestant{
		{Name: "alone", Bot: bots.Sitting()},
	}, testRng())

	assert.Error(t, err)
}

func TestRoundRejectsBrokenSpecs(t *testing.T) {
	specs := melee.DefaultSpecs()
	specs.Radius = -1

	_, err := NewRound(specs, []Contestant{
		{Name: "a", Bot: bots.Sitting()},
		{Name: "b", Bot: bots.Sitting()},
	}, testRng())

	assert.Error(t, err)
}

func TestRoundEndsAtTickLimit(t *testing.T) {
	specs := melee.DefaultSpecs()
	specs.MaxTicks = 50

	round, err := NewRound(specs, []Contestant{
		{Name: "a", Bot: bots.Sitting()},
		{Name: "b", Bot: bots.Sitting()},
	}, testRng())
	assert.NoError(t, err)

	result := round.Run()

	assert.Equal(t, 50, result.Ticks)
	assert.Equal(t, -1, result.Winner)
	assert.True(t, result.Outcomes[0].Alive)
	assert.True(t, result.Outcomes[1].Alive)
}

func TestGunnerBeatsSittingTarget(t *testing.T) {
	round, err := NewRound(melee.DefaultSpecs(), []Contestant{
		{Name: "gunner", Bot: bots.Gunner()},
		{Name: "sitting", Bot: bots.Sitting()},
	}, testRng())
	assert.NoError(t, err)

	game := round.GetGame()
	game.PlaceBot(0, vector.MakeVector2(150, 240), 0)
	game.PlaceBot(1, vector.MakeVector2(280, 240), 0)

	result := round.Run()

	assert.Equal(t, 0, result.Winner)
	assert.Equal(t, 1, result.Outcomes[0].Kills)
	assert.False(t, result.Outcomes[1].Alive)
	assert.True(t, result.Outcomes[0].Shots > 0)
}

func TestFaultingBotForfeitsWithoutStoppingTheRound(t *testing.T) {
	round, err := NewRound(melee.DefaultSpecs(), []Contestant{
		{Name: "crasher", Bot: bots.Crasher()},
		{Name: "sitting", Bot: bots.Sitting()},
	}, testRng())
	assert.NoError(t, err)

	result := round.Run()

	assert.Equal(t, 1, result.Winner)
	assert.True(t, result.Outcomes[0].Forfeited)
	assert.False(t, result.Outcomes[0].Alive)

	// nobody gets credit for a forfeit
	assert.Equal(t, 0, result.Outcomes[1].Kills)
}

func TestRoundStop(t *testing.T) {
	round, err := NewRound(melee.DefaultSpecs(), []Contestant{
		{Name: "a", Bot: bots.Sitting()},
		{Name: "b", Bot: bots.Sitting()},
	}, testRng())
	assert.NoError(t, err)

	round.Stop()
	result := round.Run()

	assert.Equal(t, 0, result.Ticks)
}

func TestRoundsHaveDistinctIDs(t *testing.T) {
	contestants := []Contestant{
		{Name: "a", Bot: bots.Sitting()},
		{Name: "b", Bot: bots.Sitting()},
	}

	first, err := NewRound(melee.DefaultSpecs(), contestants, testRng())
	assert.NoError(t, err)
	second, err := NewRound(melee.DefaultSpecs(), contestants, testRng())
	assert.NoError(t, err)

	assert.NotEqual(t, first.GetID(), second.GetID())
	assert.NotEmpty(t, first.GetID())
}
