package domain

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CreateMessageRequest is the validated form payload.
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email"`
	Subject string `json:"subject" validate:"min=5"`
	Message string `json:"message" validate:"min=10"`
}

// DeliveryStatus values
const (
	DeliverySent          DeliveryStatus = "sent"
	DeliveryNotConfigured DeliveryStatus = "not_configured"
	DeliveryFailed        DeliveryStatus = "failed"
)

type DeliveryStatus string

// Delivery records the outcome of the email relay for one submission.
type Delivery struct {
	Status    DeliveryStatus
	MessageID string
	Err       error
}

// Submission is a persisted message plus how its notification went.
type Submission struct {
	Message  ContactMessage
	Delivery Delivery
}
