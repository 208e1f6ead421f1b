// internal/mailer/mailer.go
package mailer

import (
    "context"
    "fmt"
    "strings"
)

// Email is a fully-rendered message ready for delivery.
type Email struct {
    From    string
    To      string
    Subject string
    HTML    string
    Text    string
}

// Sender is implemented by mail providers. Tests inject failing
// senders to exercise the per-recipient failure path.
type Sender interface {
    Send(ctx context.Context, email *Email) error
}

// HTMLBody wraps rendered campaign content in the standard outreach
// layout: greeting, body with newlines as line breaks, and a footer
// naming the recipient address.
func HTMLBody(greeting, content, recipient string) string {
    body := strings.ReplaceAll(content, "\n", "<br>")
    return fmt.Sprintf(`<div style="max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif;">
  <h2 style="color: #333;">Hej %s!</h2>
  <div style="line-height: 1.6; color: #555;">%s</div>
  <br>
  <p style="color: #777; font-size: 0.9em;">Detta meddelande skickades till %s</p>
</div>`, greeting, body, recipient)
}
