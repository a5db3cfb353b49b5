package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/model"
	"github.com/HuXin0817/dots-and-boxes-chat/pkg/models/render"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

// Soak plays random legal games on every size up to Width x Height and
// checks each finished game.
func Soak(ctx context.Context, w io.Writer) error {
	if len(Players) < 2 {
		return errors.New("soak needs at least two players")
	}

	seed := *SeedConf
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logx.Infof("soak seed %d", seed)

	total := *WidthConf * *HeightConf * *GamesConf
	bar := model.NewBar(w, total, "Soaking...")
	defer bar.Close()

	for width := 1; width <= *WidthConf; width++ {
		for height := 1; height <= *HeightConf; height++ {
			bar.Describe(fmt.Sprintf("Soaking %dx%d", width, height))
			for i := 0; i < *GamesConf; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := playRandom(rng, Players, width, height); err != nil {
					return errors.Wrapf(err, "seed %d", seed)
				}
				bar.Add(1)
			}
		}
	}
	return nil
}

func playRandom(rng *rand.Rand, players []string, width, height int) error {
	g, err := chess.NewGame(players, width, height)
	if err != nil {
		return err
	}
	grid := g.Grid()

	for !g.IsFinished() {
		free := g.Board().FreeLines()
		a, b := grid.LinePoints(free[rng.Intn(len(free))])
		if rng.Intn(2) == 0 {
			a, b = b, a
		}
		if _, err = g.ApplyMove(g.CurrentPlayer(), a, b); err != nil {
			return errors.Wrapf(err, "%dx%d", width, height)
		}
	}

	return check(g)
}

func check(g *chess.Game) error {
	grid := g.Grid()
	if g.LinesDrawn() != grid.LinesCount() {
		return errors.Errorf("%dx%d finished after %d of %d lines", grid.Width, grid.Height, g.LinesDrawn(), grid.LinesCount())
	}

	sum, best := 0, 0
	for _, s := range g.Scores() {
		sum += s
		best = max(best, s)
	}
	if sum != grid.BoxesCount() {
		return errors.Errorf("%dx%d scores sum to %d", grid.Width, grid.Height, sum)
	}

	leaders := 0
	for _, s := range g.Scores() {
		if s == best {
			leaders++
		}
	}
	if winner, ok := g.Winner(); ok != (leaders == 1) || (ok && g.Scores()[winner] != best) {
		return errors.Errorf("%dx%d wrong outcome for scores %v", grid.Width, grid.Height, g.Scores())
	}

	if _, err := g.ApplyMove(g.CurrentPlayer(), 0, 1); !errors.Is(err, chess.ErrGameFinished) {
		return errors.Errorf("%dx%d accepted a move after finishing", grid.Width, grid.Height)
	}

	render.Render(g, render.Options{Style: render.Compact})
	return nil
}
