package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rpupo63/storefront-site-backend/config"
	"github.com/rpupo63/storefront-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultResendBaseURL = "https://api.resend.com"

// Mailer sends an HTML email to a list of recipients
type Mailer interface {
	SendEmail(subject, html string, recipients []string) error
}

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

type ResendMailer struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

func NewResendMailer(apiKey, from, baseURL string) *ResendMailer {
	if baseURL == "" {
		baseURL = defaultResendBaseURL
	}
	return &ResendMailer{
		apiKey:  apiKey,
		from:    from,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  log.With().Str("service", "resend").Logger(),
	}
}

// NewMailerFromConfig returns a Resend backed mailer, or a LogMailer when
// RESEND_API_KEY is unset so local runs keep working without credentials.
//
// Reads:
//   - RESEND_API_KEY
//   - RESEND_FROM_EMAIL (required once the key is set), e.g. "Storefront <hello@example.com>"
//   - RESEND_BASE_URL (optional)
func NewMailerFromConfig(c map[string]string) (Mailer, error) {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	if apiKey == "" {
		log.Warn().Msg("RESEND_API_KEY not set, emails will only be logged")
		return LogMailer{}, nil
	}

	from := config.GetString(c, "RESEND_FROM_EMAIL", "")
	if from == "" {
		return nil, errs.NewEnvironmentVariableError("RESEND_FROM_EMAIL")
	}

	return NewResendMailer(apiKey, from, config.GetString(c, "RESEND_BASE_URL", "")), nil
}

// SendEmail sends an email using the Resend API
func (m *ResendMailer) SendEmail(subject, html string, recipients []string) error {
	if len(recipients) == 0 {
		return errs.NewMissingRequiredFieldError("recipients")
	}

	jsonPayload, err := json.Marshal(ResendEmailRequest{
		From:    m.from,
		To:      recipients,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.baseURL+"/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.NewServiceUnreachableError("resend", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := time.ParseDuration(resp.Header.Get("Retry-After") + "s")
		return errs.NewRateLimitError("resend", retryAfter)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return errs.NewUpstreamRejectedError("resend", resp.StatusCode, errorResp.Message)
		}
		return errs.NewUpstreamRejectedError("resend", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		m.logger.Info().Str("emailId", emailResponse.ID).Int("recipients", len(recipients)).Msg("Successfully sent email via Resend")
	}

	return nil
}

// LogMailer writes emails to the log instead of sending them
type LogMailer struct{}

func (LogMailer) SendEmail(subject, html string, recipients []string) error {
	log.Info().Str("subject", subject).Strs("recipients", recipients).Int("bytes", len(html)).Msg("email not sent, no mail provider configured")
	return nil
}
