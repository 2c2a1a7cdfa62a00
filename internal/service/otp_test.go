package service

import (
	"testing"
	"time"
)

func TestTOTPChallengeRoundTrip(t *testing.T) {
	challenge := NewTOTPChallenge([]byte("secret"), 5*time.Minute)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	code, err := challenge.Generate("alice@example.com", "+998901112233", at)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("code %q, want six digits", code)
	}
	if !challenge.Validate("alice@example.com", "+998901112233", code, at) {
		t.Error("freshly generated code did not validate")
	}
}

func TestTOTPChallengeIsPerIdentity(t *testing.T) {
	challenge := NewTOTPChallenge([]byte("secret"), 5*time.Minute)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	code, err := challenge.Generate("alice@example.com", "+998901112233", at)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if challenge.Validate("bob@example.com", "+998901112233", code, at) {
		t.Error("code validated for a different email")
	}
	if challenge.Validate("alice@example.com", "+998907778899", code, at) {
		t.Error("code validated for a different phone")
	}
}

func TestTOTPChallengeStableWithinWindow(t *testing.T) {
	challenge := NewTOTPChallenge([]byte("secret"), 5*time.Minute)
	at := time.Date(2025, 6, 1, 12, 0, 30, 0, time.UTC)

	first, err := challenge.Generate("alice@example.com", "+998901112233", at)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := challenge.Generate("alice@example.com", "+998901112233", at.Add(time.Minute))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != second {
		t.Errorf("codes within one window differ: %q vs %q", first, second)
	}
}

func TestTOTPChallengeExpiry(t *testing.T) {
	challenge := NewTOTPChallenge([]byte("secret"), 5*time.Minute)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	code, err := challenge.Generate("alice@example.com", "+998901112233", at)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Skew of one window keeps the code alive for the adjacent step.
	if !challenge.Validate("alice@example.com", "+998901112233", code, at.Add(5*time.Minute)) {
		t.Error("code rejected inside the skew window")
	}
	if challenge.Validate("alice@example.com", "+998901112233", code, at.Add(30*time.Minute)) {
		t.Error("code accepted long after expiry")
	}
}

func TestTOTPChallengeSecretMatters(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := NewTOTPChallenge([]byte("secret-a"), 5*time.Minute)
	b := NewTOTPChallenge([]byte("secret-b"), 5*time.Minute)

	code, err := a.Generate("alice@example.com", "+998901112233", at)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if b.Validate("alice@example.com", "+998901112233", code, at) {
		t.Error("code validated under a different shared secret")
	}
}
