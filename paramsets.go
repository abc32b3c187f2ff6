package trellis

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trellis-ml/trellis-go/client"
)

// ParamSetsService manages named hyperparameter bundles.
type ParamSetsService struct {
	client *client.Client
}

// Create registers a new param set.
func (s *ParamSetsService) Create(ctx context.Context, params CreateParamSetParams) (*ParamSet, error) {
	if err := Validate(params); err != nil {
		return nil, err
	}

	var ps ParamSet
	if err := s.client.Call(ctx, http.MethodPost, "/param-sets",
		client.WithJSONBody(params),
		client.WithResult(&ps),
	); err != nil {
		return nil, err
	}

	return &ps, nil
}

// Get fetches a param set by ID.
func (s *ParamSetsService) Get(ctx context.Context, id string) (*ParamSet, error) {
	var ps ParamSet
	if err := s.client.Call(ctx, http.MethodGet, "/param-sets/"+url.PathEscape(id),
		client.WithResult(&ps),
	); err != nil {
		return nil, err
	}

	return &ps, nil
}

// List returns param sets, optionally scoped to a workspace.
func (s *ParamSetsService) List(ctx context.Context, workspaceID string) ([]ParamSet, error) {
	var pss []ParamSet
	if err := s.client.Call(ctx, http.MethodGet, "/param-sets",
		client.WithQuery(client.NewQuery().Set("workspace_id", workspaceID)),
		client.WithResult(&pss),
	); err != nil {
		return nil, err
	}

	return pss, nil
}

// Delete removes a param set.
func (s *ParamSetsService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/param-sets/"+url.PathEscape(id))
}
