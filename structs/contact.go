package structs

// ContactRequest is a message submitted through the contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=1,max=5000"`
}

// SendEmailRequest is the admin payload for sending an arbitrary email.
type SendEmailRequest struct {
	To      []string `json:"to" validate:"required,min=1,dive,email"`
	Subject string   `json:"subject" validate:"required,min=1,max=200"`
	Html    string   `json:"html" validate:"required,min=1"`
}
