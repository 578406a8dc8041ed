package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"coretypes/internal/refinement"
	"coretypes/pkg/domain"
)

func uuidCmd(service func() *refinement.Service) *cobra.Command {
	var count int

	c := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := domain.AsPositiveInt(count)
			if err != nil {
				return fmt.Errorf("--count: %w", err)
			}
			for range int(n) {
				id, err := service().NewUUID(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs to generate")
	return c
}

func nowCmd(service func() *refinement.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current instant in RFC 3339",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), service().Now(cmd.Context()).UTC().Format(time.RFC3339Nano))
			return nil
		},
	}
}

func durationCmd(service func() *refinement.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "duration <amount> <unit>",
		Short: "Convert an amount of a time unit to milliseconds",
		Long: `Convert an amount of a time unit to milliseconds.

Units: milliseconds, seconds, minutes, hours, days, weeks.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := service().DurationOf(cmd.Context(), parseValue(args[0]), args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", d.Milliseconds(), d.Std())
			return nil
		},
	}
}

func localDateCmd(service func() *refinement.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "local-date <year> <month> <day>",
		Short: "Build a calendar date at UTC midnight",
		Long: `Build a calendar date at UTC midnight.

Months are 0-based, so 0 is January and 11 is December. Out-of-range
months and days roll over: month 12 is January of the following year.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := service().NewLocalDate(cmd.Context(),
				parseValue(args[0]), parseValue(args[1]), parseValue(args[2]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"date":    date.Format(time.DateOnly),
				"instant": date.Time,
			})
		},
	}
}
