package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	trellis "github.com/trellis-ml/trellis-go"
)

// NewWorkspaceCommand creates the workspace command group.
func NewWorkspaceCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Manage workspaces",
	}

	cmd.AddCommand(
		newWorkspaceListCommand(globalOpts),
		newWorkspaceCreateCommand(globalOpts),
		newWorkspaceDeleteCommand(globalOpts),
	)

	return cmd
}

func newWorkspaceListCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			wss, err := sdk.Workspaces.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCREATED")
			for _, ws := range wss {
				fmt.Fprintf(w, "%s\t%s\t%s\n", ws.ID, ws.Name, ws.CreatedAt.Format("2006-01-02 15:04"))
			}

			return w.Flush()
		},
	}
}

func newWorkspaceCreateCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			ws, err := sdk.Workspaces.Create(cmd.Context(), trellis.CreateWorkspaceParams{Name: args[0]})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ws.ID)

			return nil
		},
	}
}

func newWorkspaceDeleteCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			return sdk.Workspaces.Delete(cmd.Context(), args[0])
		},
	}
}
