package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"coretypes/internal/platform/logger"
	"coretypes/internal/refinement"
)

// errRejected marks a run where at least one value failed its refinement.
// It has already been reported, so Execute only turns it into an exit code.
var errRejected = errors.New("value rejected")

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug bool
		svc   *refinement.Service
	)

	cmd := &cobra.Command{
		Use:           "coretypes",
		Short:         "Check values against refinement types and generate refined values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "warn"
			if debug {
				level = "debug"
			}
			var err error
			svc, err = newService(logger.NewWithWriter(cmd.ErrOrStderr(), level))
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	service := func() *refinement.Service { return svc }
	cmd.AddCommand(
		checkCmd(service),
		listCmd(service),
		uuidCmd(service),
		nowCmd(service),
		durationCmd(service),
		localDateCmd(service),
	)
	return cmd
}

func newService(log *slog.Logger) (*refinement.Service, error) {
	return refinement.New(refinement.NewCatalog(), refinement.WithLogger(log))
}

// parseValue reads arg as JSON, falling back to the raw string. Quote a
// value to force a string: '"42"'.
func parseValue(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
