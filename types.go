package trellis

import "time"

// Workspace groups datasets, derived sets, and models under one
// tenant-visible scope.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Dataset is an uploaded tabular file registered with the service.
type Dataset struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id,omitempty"`
	Alias       string    `json:"alias,omitempty"`
	Filename    string    `json:"filename"`
	SizeBytes   int64     `json:"size_bytes"`
	RowCount    int       `json:"row_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// RowSet selects a subset of a dataset's rows via a filter expression.
type RowSet struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id,omitempty"`
	DatasetID   string    `json:"dataset_id"`
	Name        string    `json:"name"`
	Filter      string    `json:"filter,omitempty"`
	RowCount    int       `json:"row_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// ColumnSet selects a subset of a dataset's columns by name.
type ColumnSet struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id,omitempty"`
	DatasetID   string    `json:"dataset_id"`
	Name        string    `json:"name"`
	Columns     []string  `json:"columns"`
	CreatedAt   time.Time `json:"created_at"`
}

// ParamSet is a named bundle of training hyperparameters.
type ParamSet struct {
	ID          string         `json:"id"`
	WorkspaceID string         `json:"workspace_id,omitempty"`
	Name        string         `json:"name"`
	Params      map[string]any `json:"params"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Model is a training run and its resulting artifact.
type Model struct {
	ID           string             `json:"id"`
	WorkspaceID  string             `json:"workspace_id,omitempty"`
	Name         string             `json:"name"`
	Status       string             `json:"status"`
	DatasetID    string             `json:"dataset_id"`
	RowSetID     string             `json:"row_set_id,omitempty"`
	ColumnSetID  string             `json:"column_set_id,omitempty"`
	ParamSetID   string             `json:"param_set_id,omitempty"`
	TargetColumn string             `json:"target_column"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Prediction holds the rows returned by a model's predict action.
type Prediction struct {
	ModelID string           `json:"model_id"`
	Rows    []map[string]any `json:"rows"`
}

// CreateWorkspaceParams is the payload for WorkspacesService.Create.
type CreateWorkspaceParams struct {
	Name string `json:"name" validate:"required"`
}

// CreateRowSetParams is the payload for RowSetsService.Create.
type CreateRowSetParams struct {
	WorkspaceID string `json:"workspace_id" validate:"required"`
	DatasetID   string `json:"dataset_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Filter      string `json:"filter,omitempty"`
}

// CreateColumnSetParams is the payload for ColumnSetsService.Create.
type CreateColumnSetParams struct {
	WorkspaceID string   `json:"workspace_id" validate:"required"`
	DatasetID   string   `json:"dataset_id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Columns     []string `json:"columns" validate:"required,min=1"`
}

// CreateParamSetParams is the payload for ParamSetsService.Create.
type CreateParamSetParams struct {
	WorkspaceID string         `json:"workspace_id" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Params      map[string]any `json:"params" validate:"required"`
}

// TrainModelParams is the payload for ModelsService.Train.
type TrainModelParams struct {
	WorkspaceID  string `json:"workspace_id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	DatasetID    string `json:"dataset_id" validate:"required"`
	TargetColumn string `json:"target_column" validate:"required"`
	RowSetID     string `json:"row_set_id,omitempty"`
	ColumnSetID  string `json:"column_set_id,omitempty"`
	ParamSetID   string `json:"param_set_id,omitempty"`
}

// PredictParams is the payload for ModelsService.Predict.
type PredictParams struct {
	Rows []map[string]any `json:"rows" validate:"required,min=1"`
}
