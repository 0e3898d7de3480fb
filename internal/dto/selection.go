package dto

// BeginSelectionRequest opens a picker session
type BeginSelectionRequest struct {
	Kind string `json:"kind" validate:"required,selection_kind"`
}

// CompleteSelectionRequest records what the user picked
type CompleteSelectionRequest struct {
	SelectedID    string `json:"selectedId" validate:"required,max=100"`
	SelectedLabel string `json:"selectedLabel" validate:"omitempty,max=200"`
}
