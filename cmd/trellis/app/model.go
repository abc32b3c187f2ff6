package app

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	trellis "github.com/trellis-ml/trellis-go"
)

// NewModelCommand creates the model command group.
func NewModelCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Train models and run predictions",
	}

	cmd.AddCommand(
		newModelListCommand(globalOpts),
		newModelTrainCommand(globalOpts),
		newModelPredictCommand(globalOpts),
	)

	return cmd
}

func newModelListCommand(globalOpts *GlobalOptions) *cobra.Command {
	var workspaceID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List models, optionally scoped to a workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			ms, err := sdk.Models.List(cmd.Context(), workspaceID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tTARGET")
			for _, m := range ms {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Status, m.TargetColumn)
			}

			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "workspace ID filter")

	return cmd
}

func newModelTrainCommand(globalOpts *GlobalOptions) *cobra.Command {
	params := trellis.TrainModelParams{}

	cmd := &cobra.Command{
		Use:   "train NAME",
		Short: "Start a training run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			params.Name = args[0]

			m, err := sdk.Models.Train(cmd.Context(), params)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.ID, m.Status)

			return nil
		},
	}

	cmd.Flags().StringVarP(&params.WorkspaceID, "workspace", "w", "", "workspace ID")
	cmd.Flags().StringVarP(&params.DatasetID, "dataset", "d", "", "dataset ID")
	cmd.Flags().StringVarP(&params.TargetColumn, "target", "t", "", "target column to predict")
	cmd.Flags().StringVar(&params.RowSetID, "row-set", "", "row set ID")
	cmd.Flags().StringVar(&params.ColumnSetID, "column-set", "", "column set ID")
	cmd.Flags().StringVar(&params.ParamSetID, "param-set", "", "param set ID")

	return cmd
}

func newModelPredictCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict ID ROWS_JSON",
		Short: "Run a model over rows given as a JSON array",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := globalOpts.SDK()
			if err != nil {
				return err
			}

			var rows []map[string]any
			if err := json.Unmarshal([]byte(args[1]), &rows); err != nil {
				return fmt.Errorf("parsing rows: %w", err)
			}

			p, err := sdk.Models.Predict(cmd.Context(), args[0], trellis.PredictParams{Rows: rows})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(p.Rows, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	return cmd
}
