package trellis

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/trellis-ml/trellis-go/client"
)

// DatasetsService manages uploaded tabular files.
type DatasetsService struct {
	client *client.Client
}

// Upload sends raw bytes as a new dataset. Multipart options control
// the reported filename, the part content type, and the optional
// workspace_id and alias fields.
func (s *DatasetsService) Upload(ctx context.Context, data []byte, opts ...client.MultipartOption) (*Dataset, error) {
	return s.upload(ctx, client.NewMultipartBytes(data, opts...))
}

// UploadFrom streams a file-like source as a new dataset. When the
// source carries its own name (an [os.File] does), that name is used
// unless overridden.
func (s *DatasetsService) UploadFrom(ctx context.Context, source io.Reader, opts ...client.MultipartOption) (*Dataset, error) {
	return s.upload(ctx, client.NewMultipart(source, opts...))
}

func (s *DatasetsService) upload(ctx context.Context, mp *client.Multipart) (*Dataset, error) {
	var ds Dataset
	if err := s.client.Call(ctx, http.MethodPost, "/datasets",
		client.WithMultipartBody(mp),
		client.WithResult(&ds),
	); err != nil {
		return nil, err
	}

	return &ds, nil
}

// Get fetches a dataset by ID.
func (s *DatasetsService) Get(ctx context.Context, id string) (*Dataset, error) {
	var ds Dataset
	if err := s.client.Call(ctx, http.MethodGet, "/datasets/"+url.PathEscape(id),
		client.WithResult(&ds),
	); err != nil {
		return nil, err
	}

	return &ds, nil
}

// List returns datasets, optionally scoped to a workspace. An empty
// workspaceID lists across all workspaces; the filter parameter is
// then omitted entirely.
func (s *DatasetsService) List(ctx context.Context, workspaceID string) ([]Dataset, error) {
	var dss []Dataset
	if err := s.client.Call(ctx, http.MethodGet, "/datasets",
		client.WithQuery(client.NewQuery().Set("workspace_id", workspaceID)),
		client.WithResult(&dss),
	); err != nil {
		return nil, err
	}

	return dss, nil
}

// Download returns the dataset's raw bytes without JSON interpretation.
func (s *DatasetsService) Download(ctx context.Context, id string) ([]byte, error) {
	var raw []byte
	if err := s.client.Call(ctx, http.MethodGet, "/datasets/"+url.PathEscape(id)+"/download",
		client.WithBinaryResult(&raw),
	); err != nil {
		return nil, err
	}

	return raw, nil
}

// Delete removes a dataset.
func (s *DatasetsService) Delete(ctx context.Context, id string) error {
	return s.client.Call(ctx, http.MethodDelete, "/datasets/"+url.PathEscape(id))
}
