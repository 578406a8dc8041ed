package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"coretypes/internal/refinement"
)

func checkCmd(service func() *refinement.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "check <refinement> <value>...",
		Short: "Check one or more values against a refinement",
		Long: `Check one or more values against a refinement.

Each value is parsed as JSON when possible and used as a string otherwise,
so 42 is a number while '"42"' is a string. Temporal refinements accept
RFC 3339 timestamps. The command exits non-zero if any value is rejected.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			values := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				values = append(values, parseValue(arg))
			}

			results, err := service().CheckAll(cmd.Context(), name, values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rejected := false
			for i, r := range results {
				if r.Valid {
					fmt.Fprintf(out, "valid\t%s\t%v\n", args[i+1], r.Value)
					continue
				}
				rejected = true
				fmt.Fprintf(out, "invalid\t%s\t%s\n", args[i+1], r.Reason)
			}
			if rejected {
				return errRejected
			}
			return nil
		},
	}
}

func listCmd(service func() *refinement.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available refinements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range service().Describe() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-7s %v\n", d.Name, d.Kind, d.Implies)
			}
			return nil
		},
	}
}
