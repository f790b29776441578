package arena

import (
	"math/rand"
	"sync/atomic"

	"github.com/gobots/gobots/game/melee"
)

// BotStats accumulates results for one contestant across the rounds of a
// tournament.
type BotStats struct {
	Name   string
	Wins   int
	Ties   int
	Losses int
	Kills  int
	Shots  int
	Score  float64
}

// Tournament plays a fixed number of rounds between the same contestants,
// all drawing from a single seeded random source. The same seed and the
// same contestants replay the exact same tournament.
type Tournament struct {
	specs       melee.Specs
	contestants []Contestant
	rounds      int
	rng         *rand.Rand

	stopped int32

	onRoundEnd func(result RoundResult, roundnum int)
}

func NewTournament(specs melee.Specs, contestants []Contestant, rounds int, seed int64) *Tournament {
	return &Tournament{
		specs:       specs,
		contestants: contestants,
		rounds:      rounds,
		rng:         rand.New(rand.NewSource(seed)),

		onRoundEnd: func(result RoundResult, roundnum int) {},
	}
}

// OnRoundEnd registers a callback invoked after each round with its result
// and zero-based number. The callback runs synchronously inside Run.
func (tournament *Tournament) OnRoundEnd(cbk func(result RoundResult, roundnum int)) {
	tournament.onRoundEnd = cbk
}

// Stop makes Run return after the round in progress; safe to call from
// another goroutine.
func (tournament *Tournament) Stop() {
	atomic.StoreInt32(&tournament.stopped, 1)
}

func (tournament *Tournament) isStopped() bool {
	return atomic.LoadInt32(&tournament.stopped) == 1
}

// Run plays the rounds and returns the accumulated stats, in contestant
// order. A sole survivor earns the number of downed opponents; survivors
// of a tie split that number among themselves.
func (tournament *Tournament) Run() ([]BotStats, error) {
	stats := make([]BotStats, len(tournament.contestants))
	for index, contestant := range tournament.contestants {
		stats[index] = BotStats{Name: contestant.Name}
	}

	for roundnum := 0; roundnum < tournament.rounds && !tournament.isStopped(); roundnum++ {
		round, err := NewRound(tournament.specs, tournament.contestants, tournament.rng)
		if err != nil {
			return nil, err
		}

		result := round.Run()
		tournament.accumulate(stats, result)
		tournament.onRoundEnd(result, roundnum)
	}

	return stats, nil
}

func (tournament *Tournament) accumulate(stats []BotStats, result RoundResult) {
	alive := 0
	for _, outcome := range result.Outcomes {
		if outcome.Alive {
			alive++
		}
	}

	factor := melee.ScoreFactor(len(result.Outcomes), alive)

	for index, outcome := range result.Outcomes {
		stats[index].Kills += outcome.Kills
		stats[index].Shots += outcome.Shots

		switch {
		case !outcome.Alive:
			stats[index].Losses++
		case result.Winner == index:
			stats[index].Wins++
			stats[index].Score += factor
		default:
			stats[index].Ties++
			stats[index].Score += factor
		}
	}
}
