package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAccount_PublicView(t *testing.T) {
	account := Account{
		ID:           "account-1",
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "hash",
		IsVerified:   true,
		VerifyOtp:    "123456",
		ResetOtp:     "654321",
	}

	view := account.PublicView()

	if view.Name != "John" {
		t.Errorf("expected Name John, got %s", view.Name)
	}
	if view.Email != "john@example.com" {
		t.Errorf("expected Email john@example.com, got %s", view.Email)
	}
	if !view.IsAccountVerified {
		t.Error("expected IsAccountVerified=true")
	}
}

func TestAccount_JSONHidesSensitiveFields(t *testing.T) {
	account := Account{
		ID:                 "account-1",
		Name:               "John",
		Email:              "john@example.com",
		PasswordHash:       "bcrypt-hash",
		VerifyOtp:          "123456",
		VerifyOtpExpiresAt: time.Now(),
		ResetOtp:           "654321",
		ResetOtpExpiresAt:  time.Now(),
	}

	data, err := json.Marshal(account)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(data)
	for _, leaked := range []string{"account-1", "bcrypt-hash", "123456", "654321"} {
		if strings.Contains(body, leaked) {
			t.Errorf("serialized account leaks %q: %s", leaked, body)
		}
	}
}
