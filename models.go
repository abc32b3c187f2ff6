package trellis

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trellis-ml/trellis-go/client"
)

// ModelsService manages training runs and trained models.
type ModelsService struct {
	client *client.Client
}

// Train starts a training run. The returned model's Status reflects
// the run's state; poll with [ModelsService.Status] until it settles.
func (s *ModelsService) Train(ctx context.Context, params TrainModelParams) (*Model, error) {
	if err := Validate(params); err != nil {
		return nil, err
	}

	var m Model
	if err := s.client.Call(ctx, http.MethodPost, "/models/train",
		client.WithJSONBody(params),
		client.WithResult(&m),
	); err != nil {
		return nil, err
	}

	return &m, nil
}

// Get fetches a model by ID.
func (s *ModelsService) Get(ctx context.Context, id string) (*Model, error) {
	var m Model
	if err := s.client.Call(ctx, http.MethodGet, "/models/"+url.PathEscape(id),
		client.WithResult(&m),
	); err != nil {
		return nil, err
	}

	return &m, nil
}

// List returns models, optionally scoped to a workspace.
func (s *ModelsService) List(ctx context.Context, workspaceID string) ([]Model, error) {
	var ms []Model
	if err := s.client.Call(ctx, http.MethodGet, "/models",
		client.WithQuery(client.NewQuery().Set("workspace_id", workspaceID)),
		client.WithResult(&ms),
	); err != nil {
		return nil, err
	}

	return ms, nil
}

// Status returns the model's current training status string.
func (s *ModelsService) Status(ctx context.Context, id string) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := s.client.Call(ctx, http.MethodGet, "/models/"+url.PathEscape(id)+"/status",
		client.WithResult(&out),
	); err != nil {
		return "", err
	}

	return out.Status, nil
}

// Predict runs the model over the supplied rows.
func (s *ModelsService) Predict(ctx context.Context, id string, params PredictParams) (*Prediction, error) {
	if err := Validate(params); err != nil {
		return nil, err
	}

	var p Prediction
	if err := s.client.Call(ctx, http.MethodPost, "/models/"+url.PathEscape(id)+"/predict",
		client.WithJSONBody(params),
		client.WithResult(&p),
	); err != nil {
		return nil, err
	}

	return &p, nil
}

// Delete removes a model.
func (s *ModelsService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/models/"+url.PathEscape(id))
}
