package api

// Machine-readable error codes returned in {"error": code} bodies. Clients
// branch on these, so they are part of the API contract.
const (
	errInvalidAPIKey   = "invalid_or_missing_api_key"
	errRateLimited     = "rate_limited"
	errExpectedJSON    = "expected_application_json"
	errTextNotString   = "text_must_be_string"
	errMessagesNotList = "messages_must_be_list"
	errInvalidMessages = "invalid_messages"
	errPayloadTooLarge = "payload_too_large"
	errTextTooLarge    = "text_too_large"
	errTooManyMessages = "too_many_messages"
	errMessageTooLarge = "message_too_large"
	errAnalysisFailed  = "analysis_failed"
)

// Request size limits. The transport-level body cap exists so oversized
// payloads are rejected before any JSON decoding work.
const (
	maxBodyBytes     = 1 << 20 // 1 MiB
	maxTextLength    = 100_000 // characters
	maxMessages      = 2000
	maxMessageLength = 20_000 // characters per message
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
	Max   int    `json:"max,omitempty"`
	Index *int   `json:"index,omitempty"`
}

func errBody(code string) errorResponse {
	return errorResponse{Error: code}
}

func errBodyMax(code string, maxVal int) errorResponse {
	return errorResponse{Error: code, Max: maxVal}
}

func errBodyIndex(code string, index, maxVal int) errorResponse {
	return errorResponse{Error: code, Max: maxVal, Index: &index}
}

// healthResponse is the liveness body.
type healthResponse struct {
	Status string `json:"status"`
}
