package mail

import (
	"encoding/base64"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildMessage(t *testing.T) {
	from := mail.NewEmail("Luminous Candles", "orders@example.com")
	m := buildMessage(from, "ada@example.com", "Your Order Confirmation", "<h2>hi</h2>")

	assert.Equal(t, "Your Order Confirmation", m.Subject)
	require.Len(t, m.Personalizations, 1)
	require.Len(t, m.Personalizations[0].To, 1)
	assert.Equal(t, "ada@example.com", m.Personalizations[0].To[0].Address)
	require.Len(t, m.Content, 1)
	assert.Equal(t, "text/html", m.Content[0].Type)
	assert.Equal(t, "<h2>hi</h2>", m.Content[0].Value)
}

func TestAttach_EncodesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o600))

	m := mail.NewV3Mail()
	attach(m, []string{path}, discardLogger())

	require.Len(t, m.Attachments, 1)
	a := m.Attachments[0]
	assert.Equal(t, "label.pdf", a.Filename)
	assert.Equal(t, "application/pdf", a.Type)
	assert.Equal(t, "attachment", a.Disposition)

	decoded, err := base64.StdEncoding.DecodeString(a.Content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(decoded))
}

func TestAttach_SkipsUnreadableFile(t *testing.T) {
	good := filepath.Join(t.TempDir(), "good.pdf")
	require.NoError(t, os.WriteFile(good, []byte("%PDF-"), 0o600))

	m := mail.NewV3Mail()
	attach(m, []string{"/nonexistent/label.pdf", good}, discardLogger())

	require.Len(t, m.Attachments, 1, "missing file is skipped, the rest attach")
	assert.Equal(t, "good.pdf", m.Attachments[0].Filename)
}
