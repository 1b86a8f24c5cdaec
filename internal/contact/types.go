package contact

import (
	"errors"
	"strings"
	"time"
)

// ErrNotConfigured is returned when no delivery webhook is set.
var ErrNotConfigured = errors.New("contact delivery is not configured")

// Request is the body of POST /api/contact.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Message is a validated submission as delivered to the webhook.
type Message struct {
	ID         string    `json:"id"`
	Persona    string    `json:"persona,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var parts []string
	for _, f := range []string{"name", "email", "message"} {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return "invalid contact request: " + strings.Join(parts, ", ")
}

// Validate trims the request and checks the required fields.
func (r *Request) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)

	fields := make(map[string]string)
	if r.Name == "" {
		fields["name"] = "is required"
	}
	switch {
	case r.Email == "":
		fields["email"] = "is required"
	case !strings.Contains(r.Email, "@"):
		fields["email"] = "must contain @"
	}
	if r.Message == "" {
		fields["message"] = "is required"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
