package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// EskizSMSSender sends codes through the eskiz.uz notification gateway.
type EskizSMSSender struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewEskizSMSSender(baseURL string, token string) *EskizSMSSender {
	if strings.TrimSpace(token) == "" {
		return &EskizSMSSender{}
	}
	return &EskizSMSSender{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *EskizSMSSender) SendOTP(ctx context.Context, phone string, code string) error {
	if s.Token == "" {
		return errors.New("sms sender not configured")
	}
	if s.HTTPClient == nil {
		s.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	payload := map[string]string{
		"mobile_phone": phone,
		"message":      fmt.Sprintf("Your verification code is %s", code),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/message/sms/send", bytes.NewReader(data))
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+s.Token)
	request.Header.Set("Content-Type", "application/json")
	response, err := s.HTTPClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode >= 300 {
		return fmt.Errorf("eskiz sms failed with status %d", response.StatusCode)
	}
	return nil
}
