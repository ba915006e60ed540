// boardbots plays board games against engines in the terminal: hex, gomoku and tictactoe, against a
// human or another engine, and watches the block advisor play the falling-block game.
//
// Examples:
//
//	boardbots -game=gomoku -first=human -trace
//	boardbots -game=hex -watch -config=hex:depth=2 -config2=hex:depth=1
//	boardbots -game=tictactoe -matches=100 -parallelism=8
//	boardbots -game=blocks -watch -delay=100ms
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/boardbots/internal/config"
	"github.com/janpfeifer/boardbots/internal/engines"
	_ "github.com/janpfeifer/boardbots/internal/engines/all"
	"github.com/janpfeifer/boardbots/internal/profilers"
	"github.com/janpfeifer/boardbots/internal/ui/cli"
	"github.com/janpfeifer/boardbots/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

// BlocksGame is the name of the falling-block game, which has an advisor instead of an engine.
const BlocksGame = "blocks"

var (
	flagGame    = flag.String("game", "tictactoe", "Game to play: blocks, "+strings.Join(engines.Names(), ", "))
	flagHotseat = flag.Bool("hotseat", false, "Hotseat match: human vs human")
	flagWatch   = flag.Bool("watch", false, "Watch mode: engine vs engine, or the block advisor playing.")
	flagFirst   = flag.String("first", "", "Who plays first: human or ai. Default is random.")
	flagConfig  = flag.String("config", "",
		"Engine configuration, e.g. \"gomoku:depth=2\". Defaults to the settings file, or the game's default engine.")
	flagConfig2 = flag.String("config2", "", "Second engine configuration, for --watch or --matches. Defaults to --config.")
	flagTrace   = flag.Bool("trace", false, "Print the engine's explanation of its moves, if it gives one.")
	flagDelay   = flag.Duration("delay", -1, "Thinking delay before each engine move. Defaults to the settings file.")
	flagNoColor = flag.Bool("no_color", false, "Disable colors.")
	flagClear   = flag.Bool("clear", false, "Clear the screen before printing the board.")

	flagMatches     = flag.Int("matches", 0, "If > 0, play that many engine vs engine matches and print a summary.")
	flagParallelism = flag.Int("parallelism", 4, "Number of matches to play in parallel with --matches.")

	flagPieces       = flag.Int("pieces", 0, "Blocks: max number of pieces to play, 0 for no limit.")
	flagSeed         = flag.Int64("seed", 0, "Blocks: seed of the pieces sequence. 0 picks a random one.")
	flagBlockWeights = flag.String("block_weights", "", "Blocks: advisor weights, e.g. \"holes=-0.5,lines=1\".")

	flagSaveConfig = flag.Bool("save_config", false,
		"Save --config (for --game), --block_weights, --delay and --no_color as the defaults in the settings file.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()
	profiler := must.M1(profilers.Start(ctx, profilers.FromFlags()))
	defer func() { must.M(profiler.Stop()) }()

	settings := must.M1(config.Load())
	applyFlags(settings)
	if *flagSaveConfig {
		path := must.M1(settings.Save())
		fmt.Printf("Settings saved to %q\n", path)
	}
	ui := cli.New(!settings.NoColor, *flagClear)
	delay := must.M1(settings.Delay())

	if *flagGame == BlocksGame {
		if err := playBlocks(ctx, ui, settings, delay); err != nil {
			klog.Exitf("Blocks game failed: %+v", err)
		}
		return
	}
	if !slices.Contains(engines.Names(), *flagGame) {
		exceptions.Panicf("invalid --game=%q, valid values are %q", *flagGame, append(engines.Names(), BlocksGame))
	}

	names := [2]string{settings.EngineConfig(*flagGame), *flagConfig2}
	if names[1] == "" {
		names[1] = names[0]
	}
	first := must.M1(engines.New(names[0]))
	second := must.M1(engines.New(names[1]))
	if first.Name() != second.Name() {
		exceptions.Panicf("--config2=%q plays %q, but --game=%q", *flagConfig2, second.Name(), *flagGame)
	}

	if *flagMatches > 0 {
		summary, err := playMatches(ctx, [2]engines.Engine{first, second}, names, *flagMatches, *flagParallelism)
		if err != nil {
			klog.Exitf("Failed to play matches: %+v", err)
		}
		fmt.Println(summary)
		return
	}

	ais := assignPlayers(first, second)
	if err := playInteractive(ctx, ui, first, ais, delay); err != nil {
		klog.Exitf("Failed to run match: %+v", err)
	}
}

// applyFlags overrides the settings with the flags given.
func applyFlags(settings *config.Settings) {
	if *flagConfig != "" {
		if settings.Engines == nil {
			settings.Engines = make(map[string]string)
		}
		settings.Engines[*flagGame] = *flagConfig
	}
	if *flagBlockWeights != "" {
		settings.BlockWeights = *flagBlockWeights
	}
	if *flagDelay >= 0 {
		settings.ThinkingDelay = flagDelay.String()
	}
	if *flagNoColor {
		settings.NoColor = true
	}
	must.M(settings.Validate())
}

// assignPlayers returns the engine for each player (PlayerA first), nil for the human ones.
func assignPlayers(first, second engines.Engine) (ais [2]engines.Engine) {
	if *flagHotseat && *flagWatch {
		klog.Fatalf("--hotseat and --watch cannot be used together")
	}
	if *flagHotseat {
		return
	}
	if *flagWatch {
		return [2]engines.Engine{first, second}
	}
	var aiIdx int
	switch strings.ToLower(*flagFirst) {
	case "human":
		aiIdx = 1
	case "ai":
		aiIdx = 0
	case "":
		aiIdx = rand.IntN(2)
	default:
		exceptions.Panicf("invalid --first=%q, only valid values are \"human\" or \"ai\"", *flagFirst)
	}
	ais[aiIdx] = first
	return
}
