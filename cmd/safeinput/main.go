package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// errRejected signals that at least one input was rejected; it maps to exit code 1.
var errRejected = errors.New("one or more inputs rejected")

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		if errors.Is(err, errRejected) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "safeinput",
		Usage:     "sanitize and validate untrusted input",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rules",
				Usage:   "YAML rules file merged over the environment rules",
				EnvVars: []string{"SAFEINPUT_RULES_FILE"},
			},
		},
		Commands: []*cli.Command{
			checkCommand(),
			rulesCommand(),
			serveCommand(),
		},
		// Exit codes are decided in main.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
