package dto

// ── session DTOs ──

// SessionResponse returns a freshly minted session ID.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// SelectionRequest adds one school to a session's selection.
type SelectionRequest struct {
	SchoolName string `json:"school_name" binding:"required"`
}

// SelectionResponse is the current ordered selection of a session.
type SelectionResponse struct {
	SessionID string   `json:"session_id"`
	Schools   []string `json:"schools"`
	Remaining int      `json:"remaining"` // slots left before the 5-school cap
}
