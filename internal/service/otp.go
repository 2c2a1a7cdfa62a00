package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTPChallenge derives one-time codes deterministically from the account's
// contact identity and a shared secret. The same code is re-computable within
// the window, so a resend re-sends the code the user already received.
type TOTPChallenge struct {
	Secret []byte
	Period time.Duration
	Skew   uint
}

func NewTOTPChallenge(secret []byte, period time.Duration) *TOTPChallenge {
	return &TOTPChallenge{
		Secret: secret,
		Period: period,
		Skew:   1,
	}
}

func (c *TOTPChallenge) Generate(email string, phone string, at time.Time) (string, error) {
	return totp.GenerateCodeCustom(c.accountSecret(email, phone), at, c.opts())
}

func (c *TOTPChallenge) Validate(email string, phone string, code string, at time.Time) bool {
	ok, err := totp.ValidateCustom(code, c.accountSecret(email, phone), at, c.opts())
	return err == nil && ok
}

func (c *TOTPChallenge) accountSecret(email string, phone string) string {
	mac := hmac.New(sha256.New, c.Secret)
	mac.Write([]byte(email + "|" + phone))
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(mac.Sum(nil))
}

func (c *TOTPChallenge) opts() totp.ValidateOpts {
	period := c.Period
	if period <= 0 {
		period = 5 * time.Minute
	}
	return totp.ValidateOpts{
		Period:    uint(period.Seconds()),
		Skew:      c.Skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}
