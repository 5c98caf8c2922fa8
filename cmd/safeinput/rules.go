package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/safeinput"
	"github.com/dmitrymomot/safeinput/pkg/config"
	"github.com/dmitrymomot/safeinput/pkg/validator"
)

// securityConfig builds the rule set from the environment, with the global
// --rules flag taking precedence over SAFEINPUT_RULES_FILE.
func securityConfig(c *cli.Context) (*safeinput.Config, error) {
	var rules config.Rules
	if err := config.Load(&rules); err != nil {
		return nil, err
	}
	if c.IsSet("rules") {
		rules.File = c.String("rules")
	}
	return config.BuildSecurityConfig(rules)
}

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "print the effective rule set and available validators",
		Action: func(c *cli.Context) error {
			cfg, err := securityConfig(c)
			if err != nil {
				return err
			}

			w := c.App.Writer
			fmt.Fprintf(w, "forbidden characters (%d):", len(cfg.ForbiddenChars()))
			for _, r := range cfg.ForbiddenChars() {
				fmt.Fprintf(w, " %q", r)
			}
			fmt.Fprintln(w)

			fmt.Fprintf(w, "blocked patterns (%d):\n", len(cfg.BlockedPatterns()))
			for _, p := range cfg.BlockedPatterns() {
				fmt.Fprintf(w, "  %s\n", p)
			}

			fmt.Fprintf(w, "validators: %v\n", validator.DefaultRegistry().Names())
			return nil
		},
	}
}
