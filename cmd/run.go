// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-anygz"
	"github.com/hashicorp/go-anygz/telemetry/eventbridge"
	"github.com/pkg/errors"
)

// CLI are the cli parameters for the anygzcat binary
type CLI struct {
	Files           []string         `arg:"" name:"file" optional:"" help:"Files to print, gzip compressed or not. (\"-\" for STDIN, default)"`
	ContinueOnError bool             `short:"C" help:"Continue with the next file on error."`
	Decoder         string           `optional:"" default:"klauspost" enum:"klauspost,standard" help:"Gzip implementation (klauspost, standard)."`
	EventBus        string           `optional:"" help:"Publish telemetry to this CloudWatch Events bus (\"default\" for the default bus)."`
	MaxInputSize    int64            `optional:"" default:"-1" help:"Maximum bytes read per file (in bytes). (disable check: -1)"`
	MaxOutputSize   int64            `optional:"" default:"-1" help:"Maximum bytes written per file (in bytes). (disable check: -1)"`
	Metrics         bool             `short:"M" optional:"" default:"false" help:"Print telemetry to log after each file."`
	NoMultistream   bool             `optional:"" help:"Stop after the first gzip member."`
	Verbose         bool             `short:"v" optional:"" help:"Verbose logging."`
	Version         kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
}

// Run the entrypoint into go-anygz as a cli tool
func Run(version, commit, date string) {
	ctx := context.Background()
	var cli CLI
	kong.Parse(&cli,
		kong.Description("Print files to stdout, decompressing gzip files on the fly."),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := cli.execute(ctx, bufio.NewReader(os.Stdin), os.Stdout, logger); err != nil {
		logger.Error("anygzcat failed", "err", err)
		os.Exit(-1)
	}
}

// execute prints every file of the cli parameters to stdout.
func (c *CLI) execute(ctx context.Context, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	cfg, err := c.config(ctx, logger)
	if err != nil {
		return err
	}

	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	w := bufio.NewWriter(stdout)
	for _, name := range files {
		if err := printFile(ctx, w, stdin, name, cfg); err != nil {
			if !c.ContinueOnError {
				if ferr := w.Flush(); ferr != nil {
					return errors.Wrapf(err, "cannot write output: %v", ferr)
				}
				return err
			}
			logger.Error("skipping file", "file", name, "err", err)
		}
	}
	return errors.Wrap(w.Flush(), "cannot write output")
}

// config builds the reader configuration from the cli parameters.
func (c *CLI) config(ctx context.Context, logger *slog.Logger) (*anygz.Config, error) {
	decoder, err := anygz.ParseDecoder(c.Decoder)
	if err != nil {
		return nil, err
	}

	// setup telemetry hooks
	var hooks []anygz.TelemetryHook
	if c.Metrics {
		hooks = append(hooks, func(ctx context.Context, td *anygz.TelemetryData) {
			logger.Info("file finished", "telemetry", td)
		})
	}
	if c.EventBus != "" {
		client, err := eventbridge.NewClient(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "cannot setup telemetry")
		}
		busName := c.EventBus
		if busName == "default" {
			busName = ""
		}
		hooks = append(hooks, eventbridge.NewHook(client, busName, eventbridge.DefaultSource, logger))
	}

	return anygz.NewConfig(
		anygz.WithDecoder(decoder),
		anygz.WithLogger(logger),
		anygz.WithMaxInputSize(c.MaxInputSize),
		anygz.WithMaxOutputSize(c.MaxOutputSize),
		anygz.WithMultistream(!c.NoMultistream),
		anygz.WithTelemetryHook(chainHooks(hooks...)),
	), nil
}

// printFile copies the content of name ("-" for stdin) to w.
func printFile(ctx context.Context, w io.Writer, stdin io.Reader, name string, cfg *anygz.Config) error {
	var src io.Reader
	if name == "-" {
		src = stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "cannot open %s", name)
		}
		src = f // closed by anygz.Copy
	}

	if _, err := anygz.Copy(ctx, w, src, cfg); err != nil {
		return errors.Wrapf(err, "cannot read %s", name)
	}
	return nil
}

// chainHooks returns a hook calling all hooks in order.
func chainHooks(hooks ...anygz.TelemetryHook) anygz.TelemetryHook {
	return func(ctx context.Context, td *anygz.TelemetryData) {
		for _, hook := range hooks {
			hook(ctx, td)
		}
	}
}
