package trellis

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trellis-ml/trellis-go/client"
)

// ColumnSetsService manages column subsets of datasets.
type ColumnSetsService struct {
	client *client.Client
}

// Create registers a new column set.
func (s *ColumnSetsService) Create(ctx context.Context, params CreateColumnSetParams) (*ColumnSet, error) {
	if err := Validate(params); err != nil {
		return nil, err
	}

	var cs ColumnSet
	if err := s.client.Call(ctx, http.MethodPost, "/column-sets",
		client.WithJSONBody(params),
		client.WithResult(&cs),
	); err != nil {
		return nil, err
	}

	return &cs, nil
}

// Get fetches a column set by ID.
func (s *ColumnSetsService) Get(ctx context.Context, id string) (*ColumnSet, error) {
	var cs ColumnSet
	if err := s.client.Call(ctx, http.MethodGet, "/column-sets/"+url.PathEscape(id),
		client.WithResult(&cs),
	); err != nil {
		return nil, err
	}

	return &cs, nil
}

// List returns column sets, optionally scoped to a workspace.
func (s *ColumnSetsService) List(ctx context.Context, workspaceID string) ([]ColumnSet, error) {
	var css []ColumnSet
	if err := s.client.Call(ctx, http.MethodGet, "/column-sets",
		client.WithQuery(client.NewQuery().Set("workspace_id", workspaceID)),
		client.WithResult(&css),
	); err != nil {
		return nil, err
	}

	return css, nil
}

// Delete removes a column set.
func (s *ColumnSetsService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/column-sets/"+url.PathEscape(id))
}
