package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// contactTemplate renders the owner-facing notification. html/template
// escapes the visitor-supplied fields; the message block preserves
// whitespace.
var contactTemplate = template.Must(template.New("contact").Parse(`<div style="font-family: 'JetBrains Mono', monospace; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #06b6d4; border-bottom: 2px solid #06b6d4; padding-bottom: 10px;">New Portfolio Contact</h2>

  <div style="margin: 20px 0; padding: 15px; background: #f5f5f5; border-radius: 8px;">
    <p style="margin: 5px 0;"><strong>Name:</strong> {{.Name}}</p>
    <p style="margin: 5px 0;"><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  </div>

  <div style="margin: 20px 0;">
    <h3 style="color: #333; margin-bottom: 10px;">Message:</h3>
    <p style="line-height: 1.6; color: #555; white-space: pre-wrap;">{{.Message}}</p>
  </div>

  <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;" />

  <p style="font-size: 12px; color: #888;">
    This message was sent from your portfolio website contact form.
  </p>
</div>`))

// NewContactMessage builds the notification email for a contact-form
// submission. Reply-To is the visitor so the owner can answer directly.
func NewContactMessage(from, to, name, email, message string) (*Message, error) {
	var body strings.Builder
	data := struct {
		Name, Email, Message string
	}{Name: name, Email: email, Message: message}

	if err := contactTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render contact email: %w", err)
	}

	return &Message{
		From:    from,
		To:      []string{to},
		ReplyTo: email,
		Subject: "Portfolio Contact: " + name,
		HTML:    body.String(),
	}, nil
}
