package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"burrsearch/internal/blockcode"
	"burrsearch/internal/contract"
	"burrsearch/internal/eval"
	"burrsearch/internal/generator"
	"burrsearch/internal/puzzle"
	"burrsearch/internal/search"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func checkError(err error) {
	if err != nil {
		color.Red("%+v", err)
		os.Exit(1)
	}
}

func main() {
	app := cli.NewApp()
	app.Name = "burrsearch"
	app.Usage = "search for interesting interlocking burr puzzles"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "size, n", Value: 3, Usage: "piece side length"},
		cli.IntFlag{Name: "pieces, k", Value: 4, Usage: "number of pieces"},
		cli.IntFlag{Name: "holes", Value: 0, Usage: "cells skipped before the first piece"},
		cli.IntFlag{Name: "reach-limit", Value: 0, Usage: "bound on frontier states (0 = unbounded)"},
		cli.IntFlag{Name: "swaps", Value: 1, Usage: "cell swaps per generator mutation"},
		cli.IntFlag{Name: "min-piece-size", Value: 1, Usage: "minimum cells per piece the generator will accept"},
		cli.IntFlag{Name: "tries", Value: 200, Usage: "hill-climbing rounds per lane"},
		cli.IntFlag{Name: "give-up", Value: 50, Usage: "consecutive non-improving mutations before a lane returns"},
		cli.IntFlag{Name: "stack", Value: 4, Usage: "candidate slots per lane"},
		cli.IntFlag{Name: "lanes", Value: 4, Usage: "parallel worker lanes"},
		cli.Int64Flag{Name: "seed", Value: 1, Usage: "base RNG seed; lane i uses seed+i"},
		cli.BoolFlag{Name: "dup-drop", Usage: "score with DupDropEvaluator instead of ShrinkStepEvaluator"},
		cli.StringFlag{Name: "name", Value: "burrsearch", Usage: "display name recorded in the output document"},
		cli.StringFlag{Name: "run", Value: "local", Usage: "search run label recorded in the output document"},
	}
	app.Action = runSearch

	if err := app.Run(os.Args); err != nil {
		checkError(err)
	}
}

func runSearch(c *cli.Context) error {
	n := c.Int("size")
	k := c.Int("pieces")
	if n <= 0 || k <= 0 {
		return errors.Errorf("size and pieces must be positive, got n=%d k=%d", n, k)
	}

	var limit *int
	if v := c.Int("reach-limit"); v > 0 {
		limit = &v
	}

	start := puzzle.Base(n, k, c.Int("holes"), limit)
	if err := start.Check(); err != nil {
		return errors.Wrap(err, "starting puzzle failed validation")
	}

	var extra generator.Constraint = generator.Terminal{}
	if minSize := c.Int("min-piece-size"); minSize > 1 {
		extra = &generator.MinPieceSizeConstraint{Size: minSize, Next: extra}
	}
	gen := generator.SwapNPuzzleGenerator{
		Base:  generator.SwapPuzzleGenerator{Extra: extra},
		Swaps: c.Int("swaps"),
	}

	var evaluator eval.Evaluator = eval.ShrinkStepEvaluator{}
	if c.Bool("dup-drop") {
		evaluator = eval.DupDropEvaluator{}
	}

	searcher := search.Searcher{
		Gen:    gen,
		Eval:   evaluator,
		Tries:  c.Int("tries"),
		GiveUp: c.Int("give-up"),
		Stack:  c.Int("stack"),
	}

	found := search.RunParallel(searcher, start, c.Int("lanes"), c.Int64("seed"))
	best := search.Best(found)
	if best == nil {
		log.Println("burrsearch: no lane produced a solvable candidate")
		return nil
	}
	log.Printf("burrsearch: best candidate scored %s", best.Value)

	code := blockcode.FromPuzzle(best.Puzzle).Normalize().ToBlockCode()
	doc := contract.PuzzleDocument{
		Code:     code,
		Name:     c.String("name"),
		Run:      c.String("run"),
		Date:     time.Now().UTC().Format("2006-01-02"),
		Solution: contract.SolutionDocumentOf(best.Puzzle, best.Result),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
