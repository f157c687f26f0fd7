package utils

import (
	"context"
	"testing"
)

func TestGetAccountIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, "account-1")

	id, ok := GetAccountIDFromContext(ctx)
	if !ok {
		t.Fatal("expected account id to be present")
	}
	if id != "account-1" {
		t.Errorf("expected account-1, got %s", id)
	}
}

func TestGetAccountIDFromContext_Missing(t *testing.T) {
	if _, ok := GetAccountIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetAccountIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDCtxKey, 42)

	if _, ok := GetAccountIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetAccountIDFromContext_StringKeyDoesNotCollide(t *testing.T) {
	// a plain string key must not leak into the typed key's slot
	ctx := context.WithValue(context.Background(), "accountID", "account-1") //nolint:staticcheck

	if _, ok := GetAccountIDFromContext(ctx); ok {
		t.Error("expected ok=false for untyped string key")
	}
}
