package models

// Envelope wraps every response body. Status is a six-digit application
// status whose first three digits equal the HTTP status code.
type Envelope struct {
	Status int `json:"status"`
	Body   any `json:"body"`
}

// Message is the body of responses that carry only a human-readable text.
type Message struct {
	Message string `json:"message"`
}

// SessionTokenBody is the body returned by phone/register.
type SessionTokenBody struct {
	SessionToken string `json:"session_token"`
}

// ProvidersBody is the body returned by social/providers/.
type ProvidersBody struct {
	Providers []ProviderInfo `json:"providers"`
}
