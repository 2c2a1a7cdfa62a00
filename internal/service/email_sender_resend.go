package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type ResendEmailSender struct {
	Client *resend.Client
	From   string
}

func NewResendEmailSender(apiKey string, from string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		Client: resend.NewClient(apiKey),
		From:   from,
	}
}

func (s *ResendEmailSender) SendOTP(ctx context.Context, email string, code string) error {
	if s.Client == nil {
		return errors.New("email sender not configured")
	}
	params := &resend.SendEmailRequest{
		From:    s.From,
		To:      []string{email},
		Subject: "Your verification code",
		Html:    fmt.Sprintf("<p>Your verification code is <strong>%s</strong></p>", code),
		Text:    fmt.Sprintf("Your verification code is %s", code),
	}
	_, err := s.Client.Emails.SendWithContext(ctx, params)
	return err
}
