package models

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// LogoResponse is returned by the logo upload endpoint.
type LogoResponse struct {
	Message string `json:"message"`
	Logo    string `json:"logo"`
}

// StatusResponse is returned by the root and health endpoints.
type StatusResponse struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}

// VersionResponse exposes the build metadata of the running server.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
