package models

// SubmitRequest represents the body of a contact-form submission
// swagger:model SubmitRequest
type SubmitRequest struct {
	// Sender name
	// required: true
	// example: Alice
	Name string `json:"name"`

	// Sender email
	// required: true
	// example: a@x.com
	Email string `json:"email"`

	// Free-form message
	// example: Hello there
	Message string `json:"message"`
}

// SubmitResponse represents a successful submission
// swagger:model SubmitResponse
type SubmitResponse struct {
	// example: true
	Success bool `json:"success"`

	// Identifier assigned to the stored record
	// example: 1
	ID int64 `json:"id"`
}

// ErrorResponse is returned by every endpoint on failure
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: false
	Success bool `json:"success"`

	// Human readable error
	// example: Name and email required
	Error string `json:"error"`
}
