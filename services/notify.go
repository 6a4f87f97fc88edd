package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jmorel/portfolio-cms-backend/config"
	"github.com/jmorel/portfolio-cms-backend/models"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// Notifier pushes best-effort admin notifications when a visitor submits the
// contact form. Channels are independent; either can be left unconfigured.
type Notifier struct {
	logger zerolog.Logger
	client *http.Client

	resendAPIKey string
	fromEmail    string
	toEmail      string

	twilioClient *twilio.RestClient
	smsFrom      string
	smsTo        string
}

// NewNotifier reads channel configuration from the environment snapshot.
func NewNotifier(cfg map[string]string) *Notifier {
	n := &Notifier{
		logger:       log.With().Str("service", "notifier").Logger(),
		client:       &http.Client{Timeout: 15 * time.Second},
		resendAPIKey: config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail:    config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		toEmail:      config.GetString(cfg, "NOTIFY_EMAIL", ""),
		smsFrom:      config.GetString(cfg, "TWILIO_FROM_NUMBER", ""),
		smsTo:        config.GetString(cfg, "NOTIFY_SMS_NUMBER", ""),
	}

	accountSID := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	authToken := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	if accountSID != "" && authToken != "" {
		n.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		})
	}

	return n
}

// NotifyNewMessage fans the message out to every configured channel.
// Failures are logged and never surfaced to the visitor.
func (n *Notifier) NotifyNewMessage(msg *models.ContactMessage) {
	subject := "New contact message"
	if msg.Subject != nil && *msg.Subject != "" {
		subject = fmt.Sprintf("New contact message: %s", *msg.Subject)
	}
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)

	if err := n.sendEmail(subject, body); err != nil {
		n.logger.Error().Err(err).Msg("Failed to send contact notification email")
	}
	if err := n.sendSMS(fmt.Sprintf("New portfolio message from %s", msg.Name)); err != nil {
		n.logger.Error().Err(err).Msg("Failed to send contact notification SMS")
	}
}

func (n *Notifier) sendEmail(subject, body string) error {
	if n.resendAPIKey == "" || n.fromEmail == "" || n.toEmail == "" {
		return nil
	}

	payload, err := json.Marshal(ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.resendAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func (n *Notifier) sendSMS(body string) error {
	if n.twilioClient == nil || n.smsFrom == "" || n.smsTo == "" {
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.smsTo)
	params.SetFrom(n.smsFrom)
	params.SetBody(body)

	if _, err := n.twilioClient.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send SMS: %w", err)
	}
	return nil
}
