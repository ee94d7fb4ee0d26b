package browsehttp

type SelectRequest struct {
	ID string `json:"id" validate:"required"`
}

type DraftRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type AttachmentRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Size int64  `json:"size" validate:"gte=0"`
}

// SaveResponse reports the optimistic save outcome. Outcome is
// "saved", "failed" or "pending" (the sink has not resolved within
// the handler's wait window; the view keeps reporting the saving
// state until it does).
type SaveResponse struct {
	Outcome string `json:"outcome"`
	Entries int    `json:"entries,omitempty"`
	Error   string `json:"error,omitempty"`
}
