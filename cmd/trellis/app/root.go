// Package app implements the trellis command-line interface: a cobra
// command tree over the SDK's resource groups.
package app

import (
	"time"

	"github.com/spf13/cobra"

	trellis "github.com/trellis-ml/trellis-go"
	"github.com/trellis-ml/trellis-go/client"
)

const (
	cliName        = "trellis"
	cliDescription = "trellis - tabular datasets and model training from the terminal"
)

// GlobalOptions holds flags shared by every subcommand.
type GlobalOptions struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// SDK builds the SDK from flags, falling back to TRELLIS_* environment
// variables when --base-url is not given.
func (o *GlobalOptions) SDK() (*trellis.SDK, error) {
	var opts []client.Option
	if o.APIKey != "" {
		opts = append(opts, client.WithToken(o.APIKey))
	}
	if o.Timeout > 0 {
		opts = append(opts, client.WithTimeout(o.Timeout))
	}

	if o.BaseURL != "" {
		opts = append([]client.Option{client.WithBaseURL(o.BaseURL)}, opts...)
		return trellis.New(opts...)
	}

	return trellis.FromEnv(opts...)
}

// NewTrellisCommand creates the root trellis command with all
// subcommands registered.
func NewTrellisCommand() *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "service base URL (default: TRELLIS_BASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.APIKey, "api-key", "", "bearer credential (default: TRELLIS_API_KEY)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "per-call timeout (default: TRELLIS_TIMEOUT or 30s)")

	cmd.AddCommand(
		NewHealthCommand(opts),
		NewWorkspaceCommand(opts),
		NewDatasetCommand(opts),
		NewModelCommand(opts),
	)

	return cmd
}
