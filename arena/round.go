package arena

import (
	"fmt"
	"math/rand"

	uuid "github.com/satori/go.uuid"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/gobots/gobots/common/utils"
	"github.com/gobots/gobots/game/melee"
)

// Contestant pairs a display name with a decision function.
type Contestant struct {
	Name string
	Bot  melee.BotFunc
}

type BotOutcome struct {
	Index     int
	Name      string
	Alive     bool
	Forfeited bool
	Kills     int
	Shots     int
	Health    float64
}

// RoundResult summarizes one finished round. Winner is the index of the
// sole survivor, or -1 when the round ended as a tie (time ran out with
// several bots standing, or everyone went down on the same tick).
type RoundResult struct {
	Ticks    int
	Winner   int
	Outcomes []BotOutcome
}

// Round runs one free-for-all until a single bot remains, the tick limit
// is reached, or the round is stopped.
type Round struct {
	id          string
	specs       melee.Specs
	game        *melee.MeleeGame
	contestants []Contestant
	stopped     bool
}

func NewRound(specs melee.Specs, contestants []Contestant, rng *rand.Rand) (*Round, error) {
	if err := specs.Validate(); err != nil {
		return nil, err
	}

	if len(contestants) < 2 {
		return nil, bettererrors.
			New("Cannot start round").
			With(bettererrors.New("A round requires at least two contestants"))
	}

	game := melee.NewMeleeGame(specs, rng)
	for _, contestant := range contestants {
		game.NewEntityBot(contestant.Name)
	}

	return &Round{
		id:          uuid.NewV4().String(),
		specs:       specs,
		game:        game,
		contestants: contestants,
	}, nil
}

func (round *Round) GetID() string {
	return round.id
}

// GetGame exposes the underlying game, mostly to register an event
// callback or to set up positions before Run.
func (round *Round) GetGame() *melee.MeleeGame {
	return round.game
}

// Stop makes Run return after the tick in progress.
func (round *Round) Stop() {
	round.stopped = true
}

// Run drives the round to completion. Each tick, every alive bot gets its
// decision function invoked with a fresh handler, in index order; the
// simulation then advances one step. A decision function that panics
// forfeits its bot and the round goes on without it.
func (round *Round) Run() RoundResult {
	game := round.game

	ticks := 0
	for ; game.AliveCount() > 1 && ticks < round.specs.MaxTicks && !round.stopped; ticks++ {
		for index, contestant := range round.contestants {
			if !game.IsAlive(index) {
				continue
			}

			round.invoke(index, contestant.Bot)
		}

		game.Step(ticks)
	}

	return round.makeResult(ticks)
}

func (round *Round) invoke(index int, bot melee.BotFunc) {
	defer func() {
		if r := recover(); r != nil {
			utils.Log("round", fmt.Sprintf("Bot %s faulted, forfeiting: %v", round.game.GetName(index), r))
			round.game.Forfeit(index)
		}
	}()

	bot(round.game.NewHandler(index))
}

func (round *Round) makeResult(ticks int) RoundResult {
	game := round.game

	result := RoundResult{
		Ticks:    ticks,
		Winner:   -1,
		Outcomes: make([]BotOutcome, len(round.contestants)),
	}

	for index := range round.contestants {
		alive := game.IsAlive(index)

		result.Outcomes[index] = BotOutcome{
			Index:     index,
			Name:      game.GetName(index),
			Alive:     alive,
			Forfeited: game.IsForfeited(index),
			Kills:     game.GetKills(index),
			Shots:     game.GetShots(index),
			Health:    game.GetHealth(index),
		}

		if alive && game.AliveCount() == 1 {
			result.Winner = index
		}
	}

	return result
}
