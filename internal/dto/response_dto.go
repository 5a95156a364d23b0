package dto

// ErrorResponse is the uniform error body. Redirect, when set, tells the
// client which step of the flow to go back (or forward) to.
type ErrorResponse struct {
	Message  string   `json:"message"`
	Details  []string `json:"details,omitempty"`
	Redirect string   `json:"redirect,omitempty"`
}

// MessageResponse is the uniform acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
