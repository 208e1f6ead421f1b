// internal/mailer/resend.go
package mailer

import (
    "context"
    "fmt"

    "github.com/resend/resend-go/v3"
)

// DefaultFrom is used when no sender address is configured.
const DefaultFrom = "Musikproducent <onboarding@resend.dev>"

// ResendSender delivers mail through the Resend API.
type ResendSender struct {
    client *resend.Client
    from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
    if from == "" {
        from = DefaultFrom
    }
    return &ResendSender{
        client: resend.NewClient(apiKey),
        from:   from,
    }
}

func (s *ResendSender) Send(ctx context.Context, email *Email) error {
    from := email.From
    if from == "" {
        from = s.from
    }

    req := &resend.SendEmailRequest{
        From:    from,
        To:      []string{email.To},
        Subject: email.Subject,
        Html:    email.HTML,
        Text:    email.Text,
    }

    if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
        return fmt.Errorf("resend: failed to send email: %w", err)
    }
    return nil
}

var _ Sender = (*ResendSender)(nil)
