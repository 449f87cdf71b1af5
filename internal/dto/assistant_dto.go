package dto

// AssistantRequest is the inbound payload for the conversational assistant endpoint.
// ProfessorEmail is optional; without it the assistant answers from a generic prompt only.
type AssistantRequest struct {
	Message        string `json:"message" validate:"required"`
	ProfessorEmail string `json:"professor_email" validate:"omitempty,email"`
}

// AssistantResponse carries the assistant's reply. The assistant endpoint keeps the
// flat {response}/{error} wire shape the dashboard frontend already consumes.
type AssistantResponse struct {
	Response string `json:"response"`
}

// AssistantError is the flat error payload returned on assistant failures.
type AssistantError struct {
	Error string `json:"error"`
}
