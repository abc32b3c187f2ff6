package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewHealthCommand creates the health command, a boolean probe of the
// remote service.
func NewHealthCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the service and report ok or unreachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			if !sdk.Health(cmd.Context()) {
				return errors.New("service unreachable")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")

			return nil
		},
	}
}
