package trellis

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trellis-ml/trellis-go/client"
)

// WorkspacesService manages workspaces.
type WorkspacesService struct {
	client *client.Client
}

// Create registers a new workspace.
func (s *WorkspacesService) Create(ctx context.Context, params CreateWorkspaceParams) (*Workspace, error) {
	if err := Validate(params); err != nil {
		return nil, err
	}

	var ws Workspace
	if err := s.client.Call(ctx, http.MethodPost, "/workspaces",
		client.WithJSONBody(params),
		client.WithResult(&ws),
	); err != nil {
		return nil, err
	}

	return &ws, nil
}

// Get fetches a workspace by ID.
func (s *WorkspacesService) Get(ctx context.Context, id string) (*Workspace, error) {
	var ws Workspace
	if err := s.client.Call(ctx, http.MethodGet, "/workspaces/"+url.PathEscape(id),
		client.WithResult(&ws),
	); err != nil {
		return nil, err
	}

	return &ws, nil
}

// List returns all workspaces visible to the credential.
func (s *WorkspacesService) List(ctx context.Context) ([]Workspace, error) {
	var wss []Workspace
	if err := s.client.Call(ctx, http.MethodGet, "/workspaces",
		client.WithResult(&wss),
	); err != nil {
		return nil, err
	}

	return wss, nil
}

// Delete removes a workspace.
func (s *WorkspacesService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/workspaces/"+url.PathEscape(id))
}
