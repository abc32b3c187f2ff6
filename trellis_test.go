package trellis_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trellis "github.com/trellis-ml/trellis-go"
	"github.com/trellis-ml/trellis-go/client"
)

func newSDK(t *testing.T, handler http.Handler) *trellis.SDK {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	sdk, err := trellis.New(
		client.WithBaseURL(ts.URL),
		client.WithToken("test-token"),
	)
	require.NoError(t, err)

	return sdk
}

func TestWorkspaces_Create(t *testing.T) {
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/workspaces", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var params trellis.CreateWorkspaceParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "demo", params.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id":"ws-1","name":%q,"created_at":"2026-08-30T10:00:00Z"}`, params.Name)
	}))

	ws, err := sdk.Workspaces.Create(context.Background(), trellis.CreateWorkspaceParams{Name: "demo"})
	require.NoError(t, err)
	assert.Equal(t, "ws-1", ws.ID)
	assert.Equal(t, "demo", ws.Name)
}

func TestWorkspaces_CreateValidation(t *testing.T) {
	var hits atomic.Int64
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := sdk.Workspaces.Create(context.Background(), trellis.CreateWorkspaceParams{})

	var fields trellis.FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Len(t, fields, 1)
	assert.Equal(t, "name", fields[0].Field)
	assert.Zero(t, hits.Load(), "invalid payload must not reach the transport")
}

func TestWorkspaces_GetListDelete(t *testing.T) {
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /workspaces/ws-1":
			fmt.Fprint(w, `{"id":"ws-1","name":"demo"}`)
		case "GET /workspaces":
			fmt.Fprint(w, `[{"id":"ws-1","name":"demo"},{"id":"ws-2","name":"other"}]`)
		case "DELETE /workspaces/ws-2":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	ws, err := sdk.Workspaces.Get(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Equal(t, "demo", ws.Name)

	wss, err := sdk.Workspaces.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, wss, 2)

	require.NoError(t, sdk.Workspaces.Delete(context.Background(), "ws-2"))
}

func TestDatasets_ListScoping(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []string
	)
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.RawQuery)
		mu.Unlock()
		fmt.Fprint(w, `[]`)
	}))

	_, err := sdk.Datasets.List(context.Background(), "w1")
	require.NoError(t, err)

	_, err = sdk.Datasets.List(context.Background(), "")
	require.NoError(t, err)

	// Scoped call carries the filter; unscoped call omits it entirely.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"workspace_id=w1", ""}, queries)
}

func TestDatasets_UploadAndDownload(t *testing.T) {
	raw := []byte("id,price\n1,100\n2,250\n")

	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/datasets":
			require.NoError(t, r.ParseMultipartForm(1<<20))

			_, header, err := r.FormFile("file")
			require.NoError(t, err)
			assert.Equal(t, "prices.csv", header.Filename)
			assert.Equal(t, "w1", r.FormValue("workspace_id"))
			assert.Equal(t, "prices", r.FormValue("alias"))

			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id":"ds-1","filename":"prices.csv","alias":"prices"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/datasets/ds-1/download":
			w.Header().Set("Content-Type", "application/octet-stream")
			w.Write(raw)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	ds, err := sdk.Datasets.Upload(context.Background(), raw,
		client.WithFilename("prices.csv"),
		client.WithWorkspaceID("w1"),
		client.WithAlias("prices"),
	)
	require.NoError(t, err)
	assert.Equal(t, "ds-1", ds.ID)

	got, err := sdk.Datasets.Download(context.Background(), "ds-1")
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestRowSets_Create(t *testing.T) {
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/row-sets", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"rs-1","dataset_id":"ds-1","name":"recent","row_count":120}`)
	}))

	rs, err := sdk.RowSets.Create(context.Background(), trellis.CreateRowSetParams{
		WorkspaceID: "w1",
		DatasetID:   "ds-1",
		Name:        "recent",
		Filter:      "year >= 2024",
	})
	require.NoError(t, err)
	assert.Equal(t, 120, rs.RowCount)
}

func TestColumnSets_CreateValidation(t *testing.T) {
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid payload must not reach the transport")
	}))

	_, err := sdk.ColumnSets.Create(context.Background(), trellis.CreateColumnSetParams{
		WorkspaceID: "w1",
		DatasetID:   "ds-1",
		Name:        "features",
		// Columns missing.
	})

	var fields trellis.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "columns", fields[0].Field)
}

func TestParamSets_Create(t *testing.T) {
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/param-sets", r.URL.Path)

		var params trellis.CreateParamSetParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, float64(200), params.Params["n_estimators"])

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"ps-1","name":"tuned","params":{"n_estimators":200}}`)
	}))

	ps, err := sdk.ParamSets.Create(context.Background(), trellis.CreateParamSetParams{
		WorkspaceID: "w1",
		Name:        "tuned",
		Params:      map[string]any{"n_estimators": 200},
	})
	require.NoError(t, err)
	assert.Equal(t, "ps-1", ps.ID)
}

func TestModels_TrainStatusPredict(t *testing.T) {
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /models/train":
			w.WriteHeader(http.StatusAccepted)
			fmt.Fprint(w, `{"id":"m-1","name":"price-model","status":"training"}`)
		case "GET /models/m-1/status":
			fmt.Fprint(w, `{"status":"ready"}`)
		case "POST /models/m-1/predict":
			var params trellis.PredictParams
			require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
			require.Len(t, params.Rows, 1)
			fmt.Fprint(w, `{"model_id":"m-1","rows":[{"price":123.5}]}`)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))

	m, err := sdk.Models.Train(context.Background(), trellis.TrainModelParams{
		WorkspaceID:  "w1",
		Name:         "price-model",
		DatasetID:    "ds-1",
		TargetColumn: "price",
	})
	require.NoError(t, err)
	assert.Equal(t, "training", m.Status)

	status, err := sdk.Models.Status(context.Background(), "m-1")
	require.NoError(t, err)
	assert.Equal(t, "ready", status)

	p, err := sdk.Models.Predict(context.Background(), "m-1", trellis.PredictParams{
		Rows: []map[string]any{{"sqft": 80}},
	})
	require.NoError(t, err)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, 123.5, p.Rows[0]["price"])
}

func TestHealth(t *testing.T) {
	t.Run("healthy service", func(t *testing.T) {
		sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))

		assert.True(t, sdk.Health(context.Background()))
	})

	t.Run("failing service", func(t *testing.T) {
		sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		assert.False(t, sdk.Health(context.Background()))
	})

	t.Run("unreachable service", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := ts.URL
		ts.Close()

		sdk, err := trellis.New(client.WithBaseURL(url))
		require.NoError(t, err)

		assert.False(t, sdk.Health(context.Background()))
	})
}

func TestSDK_TokenLifecycle(t *testing.T) {
	sdk := newSDK(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.Equal(t, "test-token", sdk.Token())

	sdk.SetToken("rotated")
	assert.Equal(t, "rotated", sdk.Token())
}
