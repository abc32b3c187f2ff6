package app

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trellis-ml/trellis-go/client"
)

// NewDatasetCommand creates the dataset command group.
func NewDatasetCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dataset",
		Aliases: []string{"ds"},
		Short:   "Manage datasets",
	}

	cmd.AddCommand(
		newDatasetListCommand(globalOpts),
		newDatasetUploadCommand(globalOpts),
		newDatasetDownloadCommand(globalOpts),
	)

	return cmd
}

func newDatasetListCommand(globalOpts *GlobalOptions) *cobra.Command {
	var workspaceID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datasets, optionally scoped to a workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			dss, err := sdk.Datasets.List(cmd.Context(), workspaceID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tFILENAME\tALIAS\tROWS\tSIZE")
			for _, ds := range dss {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", ds.ID, ds.Filename, ds.Alias, ds.RowCount, ds.SizeBytes)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "workspace ID filter")

	return cmd
}

func newDatasetUploadCommand(globalOpts *GlobalOptions) *cobra.Command {
	var (
		workspaceID string
		alias       string
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a tabular file as a new dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			var opts []client.MultipartOption
			if workspaceID != "" {
				opts = append(opts, client.WithWorkspaceID(workspaceID))
			}
			if alias != "" {
				opts = append(opts, client.WithAlias(alias))
			}

			ds, err := sdk.Datasets.UploadFrom(cmd.Context(), f, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ds.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "workspace to attach the dataset to")
	cmd.Flags().StringVarP(&alias, "alias", "a", "", "human-friendly dataset alias")

	return cmd
}

func newDatasetDownloadCommand(globalOpts *GlobalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download ID",
		Short: "Download a dataset's raw bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			raw, err := sdk.Datasets.Download(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(raw)
				return err
			}

			return os.WriteFile(output, raw, 0o644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default: stdout)")

	return cmd
}
