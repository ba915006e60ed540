package main

import (
	"context"
	"fmt"
	"time"

	"github.com/janpfeifer/boardbots/internal/blocks"
	"github.com/janpfeifer/boardbots/internal/config"
	"github.com/janpfeifer/boardbots/internal/ui/cli"
	"github.com/pkg/errors"
)

// playBlocks lets the advisor play the falling-block game. With --watch every piece is shown with
// its advised placement before it is dropped, otherwise only the final stack is printed.
func playBlocks(ctx context.Context, ui *cli.UI, settings *config.Settings, delay time.Duration) error {
	weights := blocks.DefaultWeights
	if settings.BlockWeights != "" {
		var err error
		weights, err = blocks.ParseWeights(settings.BlockWeights)
		if err != nil {
			return err
		}
	}
	seed := *flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	advisor := blocks.NewAdvisor(weights)
	game := blocks.NewGame(advisor, seed)

	if !*flagWatch {
		if err := game.Run(ctx, *flagPieces, nil); err != nil {
			return err
		}
		ui.PrintBlocks(game, nil)
		fmt.Printf("\nseed=%d, game over=%v\n", seed, game.IsOver())
		return nil
	}

	for *flagPieces <= 0 || game.Pieces() < *flagPieces {
		stack := game.Stack()
		advice, found := advisor.Advise(&stack, game.Current().Shape())
		if found {
			ui.PrintBlocks(game, &advice)
		} else {
			ui.PrintBlocks(game, nil)
		}
		if delay > 0 {
			select {
			case <-ctx.Done():
				return errors.Wrapf(ctx.Err(), "blocks game interrupted after %d pieces", game.Pieces())
			case <-time.After(delay):
			}
		} else if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "blocks game interrupted after %d pieces", game.Pieces())
		}
		if _, ok := game.Step(); !ok {
			break
		}
	}
	ui.PrintBlocks(game, nil)
	fmt.Printf("\nseed=%d, game over=%v\n", seed, game.IsOver())
	return nil
}
