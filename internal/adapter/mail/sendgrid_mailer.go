package mail

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/usecase"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends transactional HTML email. Attachments are PDFs read
// from disk and base64-encoded into the message; one unreadable file is
// skipped, not fatal.
type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
	log    *slog.Logger
}

func NewSendGridMailer(apiKey, fromAddr string, log *slog.Logger) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("Luminous Candles", fromAddr),
		log:    log,
	}
}

func (s *SendGridMailer) Send(ctx context.Context, to, subject, html string, attachments ...string) error {
	m := buildMessage(s.from, to, subject, html)
	attach(m, attachments, s.log)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	s.log.Info("email sent", "to", to, "status", resp.StatusCode)
	return nil
}

func buildMessage(from *mail.Email, to, subject, html string) *mail.SGMailV3 {
	m := mail.NewV3Mail()
	m.SetFrom(from)
	m.Subject = subject
	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", to))
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/html", html))
	return m
}

func attach(m *mail.SGMailV3, paths []string, log *slog.Logger) {
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Warn("could not attach file", "path", path, "err", err)
			continue
		}
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(raw))
		a.SetFilename(filepath.Base(path))
		a.SetType("application/pdf")
		a.SetDisposition("attachment")
		m.AddAttachment(a)
	}
}

var _ usecase.Mailer = (*SendGridMailer)(nil)
