package main

import (
	"fmt"
	"os"
	"time"

	notify "github.com/bitly/go-notify"
	pb "github.com/cheggaaa/pb"
	"github.com/davecgh/go-spew/spew"
	"github.com/ttacon/chalk"
	"github.com/urfave/cli"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/gobots/gobots/arena"
	"github.com/gobots/gobots/bots"
	"github.com/gobots/gobots/common"
	"github.com/gobots/gobots/common/utils"
	"github.com/gobots/gobots/game/melee"
)

const stopChannel = "tournament:stop"

func main() {
	app := makeapp()
	utils.Check(app.Run(os.Args), "Could not run command")
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "gobots"
	app.Usage = "Tick based bot combat arena"

	app.Commands = []cli.Command{
		{
			Name:      "run",
			Aliases:   []string{"r"},
			Usage:     "Run a tournament between named bots",
			ArgsUsage: "BOT BOT [BOT...]",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "rounds, r", Value: 1, Usage: "Number of rounds to play"},
				cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed; 0 draws one from the clock"},
				cli.IntFlag{Name: "max-ticks", Value: 0, Usage: "Override the tick limit per round"},
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			},
			Action: func(c *cli.Context) error {
				runAction(c.Args(), c.Int("rounds"), c.Int64("seed"), c.Int("max-ticks"), c.Bool("debug"))
				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List the built-in bots",
			Action: func(c *cli.Context) error {
				for _, name := range bots.Names() {
					fmt.Println(name)
				}
				return nil
			},
		},
	}

	return app
}

func runAction(names []string, rounds int, seed int64, maxTicks int, isDebug bool) {
	utils.Assert(rounds > 0, "rounds must be at least 1")

	if !isDebug {
		utils.LogFn = func(service string, message string) {}
	}

	if len(names) == 0 {
		names = bots.Names()
	}

	contestants := make([]arena.Contestant, 0, len(names))
	seen := make(map[string]int)

	for _, name := range names {
		factory, err := bots.Get(name)
		if err != nil {
			utils.FailWith(err)
		}

		seen[name]++
		displayName := name
		if seen[name] > 1 {
			displayName = fmt.Sprintf("%s-%d", name, seen[name])
		}

		contestants = append(contestants, arena.Contestant{
			Name: displayName,
			Bot:  factory(),
		})
	}

	specs := melee.DefaultSpecs()
	if maxTicks > 0 {
		specs.MaxTicks = maxTicks
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if isDebug {
		spew.Dump(specs)
	}

	tournament := arena.NewTournament(specs, contestants, rounds, seed)

	// handling signals
	go func() {
		<-common.SignalHandler()
		notify.Post(stopChannel, nil)
	}()

	stopChan := make(chan interface{})
	notify.Start(stopChannel, stopChan)
	go func() {
		<-stopChan
		utils.WarnWith(bettererrors.New("Interrupted; stopping after the round in progress"))
		tournament.Stop()
	}()

	var bar *pb.ProgressBar
	if rounds > 1 {
		bar = pb.New(rounds)
		bar.Start()
	}

	tournament.OnRoundEnd(func(result arena.RoundResult, roundnum int) {
		if bar != nil {
			bar.Increment()
		}

		utils.Log("tournament", fmt.Sprintf("Round %d over after %d ticks", roundnum+1, result.Ticks))
	})

	stats, err := tournament.Run()
	if err != nil {
		utils.FailWith(err)
	}

	if bar != nil {
		bar.Finish()
	}

	printStats(stats, seed)
}

func printStats(stats []arena.BotStats, seed int64) {
	fmt.Println("")
	fmt.Printf("Seed: %d\n", seed)
	fmt.Println("")
	fmt.Printf("%-20s %6s %6s %8s %7s %7s %9s\n", "BOT", "WINS", "TIES", "LOSSES", "KILLS", "SHOTS", "SCORE")

	best := bestScore(stats)

	for _, botstats := range stats {
		line := fmt.Sprintf(
			"%-20s %6d %6d %8d %7d %7d %9.2f",
			botstats.Name,
			botstats.Wins,
			botstats.Ties,
			botstats.Losses,
			botstats.Kills,
			botstats.Shots,
			botstats.Score,
		)

		if botstats.Score == best && best > 0 {
			fmt.Println(chalk.Green.Color(line))
		} else {
			fmt.Println(line)
		}
	}

	fmt.Println("")
}

func bestScore(stats []arena.BotStats) float64 {
	best := 0.0
	for _, botstats := range stats {
		if botstats.Score > best {
			best = botstats.Score
		}
	}

	return best
}
