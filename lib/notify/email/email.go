package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"xptracker-backend/lib/notify"

	"github.com/jordan-wright/email"
)

type SmtpConfig struct {
	Server       string   `json:"server"`
	Port         int      `json:"port"`
	EmailAddress string   `json:"email_address"`
	Password     string   `json:"password"`
	Recipients   []string `json:"recipients"`
}

type Mailer struct {
	config SmtpConfig
}

// New returns an smtp notifier, or a Noop when no server or
// recipients are configured.
func New(config SmtpConfig) notify.Notifier {
	if config.Server == "" || len(config.Recipients) == 0 {
		slog.Info("smtp not configured, email notifications disabled")
		return notify.Noop{}
	}
	return Mailer{config: config}
}

func (m Mailer) Send(ctx context.Context, msg notify.Message) error {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("XP Tracker <%s>", m.config.EmailAddress)
	mail.To = m.config.Recipients
	mail.Subject = msg.Title
	mail.Text = []byte(renderText(msg))

	err := mail.Send(
		fmt.Sprintf("%s:%d", m.config.Server, m.config.Port),
		smtp.PlainAuth("", m.config.EmailAddress, m.config.Password, m.config.Server),
	)
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(fmt.Sprintf("%s:%d", m.config.Server, m.config.Port), nil)
	}
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "sent email report", "subject", msg.Title, "recipients", len(m.config.Recipients))
	return nil
}

func renderText(msg notify.Message) string {
	var out strings.Builder
	out.WriteString(msg.Description)
	for _, f := range msg.Fields {
		out.WriteString("\n\n")
		out.WriteString(f.Name)
		out.WriteString("\n")
		out.WriteString(f.Value)
	}
	if msg.Footer != "" {
		out.WriteString("\n\n--\n")
		out.WriteString(msg.Footer)
	}
	return out.String()
}
