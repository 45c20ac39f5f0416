package dto

// ContactFormRequest represents a website contact-form submission
type ContactFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" binding:"required"`
}

// NewsletterRequest represents a newsletter subscription
type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TrackEventRequest represents an analytics event submission
type TrackEventRequest struct {
	Type      string            `json:"type" binding:"required,oneof=page_view checkout_start checkout_complete link_click"`
	Path      string            `json:"path" binding:"required"`
	SessionID string            `json:"sessionId" binding:"required"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}
