// Package trellis is the Go SDK for the Trellis tabular-data and
// model-training service. Construct an [SDK] with [New] or [FromEnv]
// and reach the API through its resource groups:
//
//	sdk, err := trellis.New(
//		client.WithBaseURL("https://api.trellis.dev"),
//		client.WithToken(apiKey),
//	)
//	ws, err := sdk.Workspaces.Create(ctx, trellis.CreateWorkspaceParams{Name: "demo"})
//
// Every method is a thin call-site over the request pipeline in
// [github.com/trellis-ml/trellis-go/client].
package trellis

import (
	"context"
	"net/http"

	"github.com/trellis-ml/trellis-go/client"
)

// SDK is the entrypoint to the Trellis API.
type SDK struct {
	client *client.Client

	Workspaces *WorkspacesService
	Datasets   *DatasetsService
	RowSets    *RowSetsService
	ColumnSets *ColumnSetsService
	ParamSets  *ParamSetsService
	Models     *ModelsService
}

// New instantiates an SDK with the provided client options.
// client.WithBaseURL is required.
func New(opts ...client.Option) (*SDK, error) {
	c, err := client.Build(opts...)
	if err != nil {
		return nil, err
	}

	return &SDK{
		client:     c,
		Workspaces: &WorkspacesService{client: c},
		Datasets:   &DatasetsService{client: c},
		RowSets:    &RowSetsService{client: c},
		ColumnSets: &ColumnSetsService{client: c},
		ParamSets:  &ParamSetsService{client: c},
		Models:     &ModelsService{client: c},
	}, nil
}

// SetToken replaces the bearer credential used by subsequent calls.
func (s *SDK) SetToken(token string) {
	s.client.SetToken(token)
}

// Token returns the current bearer credential.
func (s *SDK) Token() string {
	return s.client.Token()
}

// Health reports whether the service answered its health probe. Every
// failure (network, timeout, non-2xx) becomes false. This is the one
// place the pipeline suppresses errors instead of surfacing them.
func (s *SDK) Health(ctx context.Context) bool {
	return s.client.Call(ctx, http.MethodGet, "/health") == nil
}
