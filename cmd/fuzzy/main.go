package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bottlerocketlabs/similarity"
	"github.com/bottlerocketlabs/similarity/finder"
	"github.com/bottlerocketlabs/similarity/result"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// EnvAlgorithm names the algorithm used when --algorithm is not given
const EnvAlgorithm = "FUZZY_ALGORITHM"

// Env is abstracted environment
type Env struct {
	m map[string]string
}

// Get an environment variable by key, or blank string if missing
func (e *Env) Get(key string) string {
	value, ok := e.m[key]
	if !ok {
		return ""
	}
	return value
}

// NewEnv creates a new env from = separated string slice (eg: os.Environ())
func NewEnv(environ []string) Env {
	e := make(map[string]string)
	for _, env := range environ {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		e[parts[0]] = parts[1]
	}
	return Env{m: e}
}

func main() {
	err := Run(os.Args, NewEnv(os.Environ()), os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		logrus.Fatalf("error: %s", err)
	}
}

func defaultAlgorithm(env Env) string {
	if name := env.Get(EnvAlgorithm); name != "" {
		return name
	}
	return similarity.JaroWinkler
}

// Run is the main thread but separated out so easier to test
func Run(args []string, env Env, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := logrus.New()
	logger.SetOutput(stderr)

	app := &cli.App{
		Name:      "fuzzy",
		Usage:     "output selected line from stdin (fuzzy search)",
		UsageText: "fuzzy [options] [query]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "scoring algorithm: " + strings.Join(similarity.Names(), ", "),
				Value:   defaultAlgorithm(env),
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "ranking order: ascending or descending (default: algorithm's own)",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "show at most this many lines, 0 for all",
			},
			&cli.Float64Flag{
				Name:  "cutoff",
				Usage: "hide lines scoring worse than this",
			},
			&cli.BoolFlag{
				Name:    "print",
				Aliases: []string{"p"},
				Usage:   "print ranked lines with scores instead of the interactive finder",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose. print out scores with text",
			},
		},
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			return find(c, logger, stdin, stdout)
		},
	}
	return app.Run(args)
}

func find(c *cli.Context, logger *logrus.Logger, stdin io.Reader, stdout io.Writer) error {
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}

	algorithm, err := similarity.Lookup(c.String("algorithm"))
	if err != nil {
		return err
	}
	order, err := result.ParseOrder(c.String("order"))
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	query := strings.Join(c.Args().Slice(), " ")
	content, err := finder.ReadNewContent(stdin)
	if err != nil {
		return err
	}
	content.SetAlgorithm(algorithm)
	content.SetOrder(order)
	content.SetLimit(c.Int("limit"))
	content.SetSmartCase()
	if c.IsSet("cutoff") {
		content.SetCutoff(c.Float64("cutoff"))
	}

	logger.WithFields(logrus.Fields{
		"algorithm":  c.String("algorithm"),
		"order":      order,
		"candidates": content.GetRowCount(),
	}).Debug("ranking input")

	if c.Bool("print") {
		content.Filter(query)
		for _, item := range content.Live() {
			if !content.Ranked() {
				fmt.Fprintln(stdout, item)
				continue
			}
			fmt.Fprintf(stdout, "%s\t%g\n", item, item.Score)
		}
		return nil
	}

	if c.Bool("verbose") {
		content.SetVerbose()
	}
	out, err := finder.Find(query, content)
	fmt.Fprintln(stdout, out)
	return err
}
