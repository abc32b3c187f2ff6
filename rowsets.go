package trellis

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trellis-ml/trellis-go/client"
)

// RowSetsService manages row subsets of datasets.
type RowSetsService struct {
	client *client.Client
}

// Create registers a new row set.
func (s *RowSetsService) Create(ctx context.Context, params CreateRowSetParams) (*RowSet, error) {
	if err := Validate(params); err != nil {
		return nil, err
	}

	var rs RowSet
	if err := s.client.Call(ctx, http.MethodPost, "/row-sets",
		client.WithJSONBody(params),
		client.WithResult(&rs),
	); err != nil {
		return nil, err
	}

	return &rs, nil
}

// Get fetches a row set by ID.
func (s *RowSetsService) Get(ctx context.Context, id string) (*RowSet, error) {
	var rs RowSet
	if err := s.client.Call(ctx, http.MethodGet, "/row-sets/"+url.PathEscape(id),
		client.WithResult(&rs),
	); err != nil {
		return nil, err
	}

	return &rs, nil
}

// List returns row sets, optionally scoped to a workspace.
func (s *RowSetsService) List(ctx context.Context, workspaceID string) ([]RowSet, error) {
	var rss []RowSet
	if err := s.client.Call(ctx, http.MethodGet, "/row-sets",
		client.WithQuery(client.NewQuery().Set("workspace_id", workspaceID)),
		client.WithResult(&rss),
	); err != nil {
		return nil, err
	}

	return rss, nil
}

// Delete removes a row set.
func (s *RowSetsService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/row-sets/"+url.PathEscape(id))
}
