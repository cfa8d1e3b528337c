package core

// Endpoint is a framework-agnostic route specification. Adapters attach
// their own handlers by OperationID; the Public flag is the route metadata
// the authorization gate consults, so no route is ever implicitly open.
type Endpoint struct {
	Path     string
	Method   string
	Public   bool
	Metadata EndpointMetadata
}

type EndpointMetadata struct {
	OperationID string
	Description string
}

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode,omitempty"`
}
