package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type EmailSender interface {
	SendOTP(ctx context.Context, email string, code string) error
}

type SMSSender interface {
	SendOTP(ctx context.Context, phone string, code string) error
}

// Notifier fans a code out to the configured channels. Each send runs in its
// own goroutine under a bounded timeout; failures are logged and swallowed so
// a slow or dead provider never stalls or fails registration.
type Notifier struct {
	Email   EmailSender
	SMS     SMSSender
	Timeout time.Duration
	Logger  *logrus.Logger
}

func (n *Notifier) Dispatch(email string, phone string, code string) {
	if n.Email != nil {
		go n.send("email", email, func(ctx context.Context) error {
			return n.Email.SendOTP(ctx, email, code)
		})
	}
	if n.SMS != nil {
		go n.send("sms", phone, func(ctx context.Context) error {
			return n.SMS.SendOTP(ctx, phone, code)
		})
	}
}

func (n *Notifier) send(channel string, destination string, fn func(ctx context.Context) error) {
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		if n.Logger != nil {
			n.Logger.WithError(err).WithFields(logrus.Fields{
				"channel":     channel,
				"destination": destination,
			}).Warn("otp dispatch failed")
		}
	}
}
