package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gopkg.in/mail.v2"
	"rewear.backend/internal/config"
	"rewear.backend/internal/domain/entities"
	"rewear.backend/pkg/logger"
)

const (
	resultSent   = "sent"
	resultFailed = "failed"
	resultLogged = "logged"
)

// newMessagesCounter registers the outgoing mail counter, reusing an existing one.
func newMessagesCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rewear_mail_messages_total",
		Help: "Outgoing notification emails by kind and result.",
	}, []string{"kind", "result"})
	if reg == nil {
		return counter
	}
	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return counter
}

// SMTPMailer sends notifications through an SMTP relay.
type SMTPMailer struct {
	dialer   *mail.Dialer
	from     string
	loginURL string
	send     func(d *mail.Dialer, m ...*mail.Message) error
	messages *prometheus.CounterVec
}

func NewSMTPMailer(cfg config.SMTPConfig, frontendURL string, reg prometheus.Registerer) *SMTPMailer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = 20 * time.Second
	return &SMTPMailer{
		dialer:   d,
		from:     cfg.From,
		loginURL: loginURL(frontendURL),
		send:     func(d *mail.Dialer, m ...*mail.Message) error { return d.DialAndSend(m...) },
		messages: newMessagesCounter(reg),
	}
}

// SendAccountStatus emails the user their current account status.
func (s *SMTPMailer) SendAccountStatus(ctx context.Context, user *entities.User) error {
	body, err := renderAccountStatus(user, s.loginURL)
	if err != nil {
		return fmt.Errorf("render account status mail: %w", err)
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetAddressHeader("To", user.Email, user.Name())
	m.SetHeader("Subject", accountStatusSubject)
	m.SetBody("text/html", body)

	if err := s.send(s.dialer, m); err != nil {
		s.messages.WithLabelValues("account_status", resultFailed).Inc()
		logger.Error(ctx, "Failed to send account status mail", zap.String("to", user.Email), zap.Error(err))
		return fmt.Errorf("send account status mail: %w", err)
	}

	s.messages.WithLabelValues("account_status", resultSent).Inc()
	logger.Info(ctx, "Account status mail sent", zap.String("to", user.Email), zap.String("status", string(user.Status)))
	return nil
}

// LogMailer writes notifications to the log. Used when no SMTP host is configured.
type LogMailer struct {
	loginURL string
	messages *prometheus.CounterVec
}

func NewLogMailer(frontendURL string, reg prometheus.Registerer) *LogMailer {
	return &LogMailer{loginURL: loginURL(frontendURL), messages: newMessagesCounter(reg)}
}

func (l *LogMailer) SendAccountStatus(ctx context.Context, user *entities.User) error {
	body, err := renderAccountStatus(user, l.loginURL)
	if err != nil {
		return fmt.Errorf("render account status mail: %w", err)
	}
	l.messages.WithLabelValues("account_status", resultLogged).Inc()
	logger.Info(ctx, "Account status mail",
		zap.String("to", user.Email),
		zap.String("subject", accountStatusSubject),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}

// Mailer is satisfied by both SMTPMailer and LogMailer.
type Mailer interface {
	SendAccountStatus(ctx context.Context, user *entities.User) error
}

// New picks SMTP when a host is configured, otherwise the log mailer.
func New(cfg config.SMTPConfig, frontendURL string, reg prometheus.Registerer) Mailer {
	if strings.TrimSpace(cfg.Host) == "" {
		return NewLogMailer(frontendURL, reg)
	}
	return NewSMTPMailer(cfg, frontendURL, reg)
}

func loginURL(frontendURL string) string {
	if frontendURL == "" {
		return ""
	}
	return strings.TrimRight(frontendURL, "/") + "/login"
}
