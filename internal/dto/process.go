package dto

// ProcessImageRequest is the body of POST /processImage. A caller submits a
// receipt/bill image as a data URI together with the category and account
// vocabulary the model must choose from.
type ProcessImageRequest struct {
	// APIKey is an optional caller-supplied provider credential, honored only
	// when the server policy allows bring-your-own-key access.
	APIKey string `json:"api_key"`
	// Secret is the optional operator-configured shared secret.
	Secret       string         `json:"secret"`
	Category     []string       `json:"category" validate:"required,min=1"`
	Image        string         `json:"image" validate:"required"`
	Mode         string         `json:"mode" validate:"required,oneof=record"`
	Account      []AccountEntry `json:"account" validate:"required,min=1,dive"`
	CustomPrompt string         `json:"custom_prompt"`
}

type AccountEntry struct {
	Name     string `json:"name" validate:"required"`
	Currency string `json:"currency" validate:"required"`
	Note     string `json:"note"`
}

// ProcessImageResponse wraps the model's parsed reply. Result is deliberately
// untyped: past the JSON-parse boundary every field of every record is
// untrusted and the client treats it as optional.
type ProcessImageResponse struct {
	Success bool `json:"success"`
	Result  any  `json:"result"`
}

// TransactionRecord is the record shape the model is instructed to produce.
// It is advisory only: replies reach the caller as parsed JSON without being
// validated against it, since the provider may silently deviate.
type TransactionRecord struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency,omitempty"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Category   string  `json:"category,omitempty"`
	Note       string  `json:"note,omitempty"`
	Warning    string  `json:"warning,omitempty"`
	TransferTo string  `json:"transfer_to,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ValidationErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}
