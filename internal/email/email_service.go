package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// OrderSummary is what the confirmation email renders.
type OrderSummary struct {
	OrderNumber   string
	PaymentMethod string
	Total         string
	ItemLines     []string
}

type Service interface {
	SendOrderConfirmation(ctx context.Context, to string, summary OrderSummary) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "orders@tangry.in"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   "https://api.resend.com",
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendOrderConfirmation(ctx context.Context, to string, summary OrderSummary) error {
	var lines strings.Builder
	for _, line := range summary.ItemLines {
		lines.WriteString("<li>" + line + "</li>")
	}

	html := fmt.Sprintf(
		"<p>Thank you for your order!</p>"+
			"<p>Order number: <strong>%s</strong></p>"+
			"<ul>%s</ul>"+
			"<p>Payment method: %s</p>"+
			"<p>Total: ₹%s</p>"+
			"<p>We will notify you when your spices ship.</p>",
		summary.OrderNumber,
		lines.String(),
		summary.PaymentMethod,
		summary.Total,
	)
	return s.send(ctx, to, "Your Tangry order "+summary.OrderNumber, html)
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > 500 {
			msg = msg[:500]
		}
		if msg == "" {
			return fmt.Errorf("resend API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

type noopService struct{}

func (s *noopService) SendOrderConfirmation(_ context.Context, _ string, _ OrderSummary) error {
	return nil
}
