package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/safeinput/pkg/batch"
	"github.com/dmitrymomot/safeinput/pkg/validator"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "check inputs given as arguments, or one per stdin line",
		ArgsUsage: "[input...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Value:   "email",
				Usage:   "validator name (see the rules command)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 4,
				Usage: "inputs checked at once",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-input time limit, 0 for none",
			},
		},
		Action: runCheck,
	}
}

func runCheck(c *cli.Context) error {
	checker, err := validator.DefaultRegistry().Lookup(c.String("type"))
	if err != nil {
		return err
	}
	cfg, err := securityConfig(c)
	if err != nil {
		return err
	}

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		if inputs, err = readLines(c); err != nil {
			return err
		}
	}

	opts := []batch.Option{batch.WithConcurrency(c.Int("concurrency"))}
	if d := c.Duration("timeout"); d > time.Duration(0) {
		opts = append(opts, batch.WithTimeout(d))
	}
	items := batch.Run(c.Context, inputs, func(ctx context.Context, input string) (validator.Result, error) {
		return checker.Check(ctx, input, cfg)
	}, opts...)

	w := c.App.Writer
	for _, item := range items {
		if item.Err != nil {
			fmt.Fprintf(w, "[ERR] '%s' => %v\n", inputs[item.Index], item.Err)
			continue
		}
		fmt.Fprintf(w, "[OK] '%s' => %v\n", inputs[item.Index], item.Value.Cleaned)
	}

	if len(batch.Failed(items)) > 0 {
		return errRejected
	}
	return nil
}

func readLines(c *cli.Context) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(c.App.Reader)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
