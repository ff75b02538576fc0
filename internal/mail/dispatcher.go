package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	gomail "github.com/wneessen/go-mail"
)

// ErrDisabled is returned by DisabledDispatcher for every delivery attempt.
var ErrDisabled = errors.New("mail delivery is not configured")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPDispatcher sends confirmation codes by email.
type SMTPDispatcher struct {
	sender Sender
	from   string
	text   *texttemplate.Template
	html   *htmltemplate.Template
}

func NewSMTPDispatcher(cfg Config) (*SMTPDispatcher, error) {
	client, err := newSMTPClient(cfg)
	if err != nil {
		return nil, err
	}

	return NewDispatcherWithSender(client, cfg.From)
}

// newSMTPClient keeps the configured port; STARTTLS is used when the server offers it.
func newSMTPClient(cfg Config) (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return client, nil
}

func NewDispatcherWithSender(sender Sender, from string) (*SMTPDispatcher, error) {
	text, err := texttemplate.New("emails").Parse(confirmationTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	html, err := htmltemplate.New("emails").Parse(confirmationTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}

	return &SMTPDispatcher{
		sender: sender,
		from:   from,
		text:   text,
		html:   html,
	}, nil
}

func (d *SMTPDispatcher) SendConfirmationCode(ctx context.Context, to, username, code string) error {
	data := confirmationData{
		Username: username,
		Code:     code,
	}

	var textBody, htmlBody bytes.Buffer
	if err := d.text.ExecuteTemplate(&textBody, "confirmation_text", data); err != nil {
		return fmt.Errorf("render text body: %w", err)
	}
	if err := d.html.ExecuteTemplate(&htmlBody, "confirmation_html", data); err != nil {
		return fmt.Errorf("render html body: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(d.from); err != nil {
		return fmt.Errorf("set sender %q: %w", d.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient %q: %w", to, err)
	}
	msg.Subject(confirmationSubject)
	msg.SetBodyString(gomail.TypeTextPlain, textBody.String())
	msg.AddAlternativeString(gomail.TypeTextHTML, htmlBody.String())

	if err := d.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}

// DisabledDispatcher is used when no SMTP server is configured. Every code then falls back to in-band display.
type DisabledDispatcher struct{}

func (DisabledDispatcher) SendConfirmationCode(context.Context, string, string, string) error {
	return ErrDisabled
}
