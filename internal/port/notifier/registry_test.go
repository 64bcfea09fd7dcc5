package notifier

import (
	"context"
	"testing"

	"github.com/buildhook/buildhook/internal/buildctx"
)

type stubSender struct{}

func (stubSender) Name() string { return "stub" }
func (stubSender) Send(context.Context, Request, buildctx.Context) (int, error) {
	return 204, nil
}

func TestRegistryUnknownProvider(t *testing.T) {
	if _, err := New("does-not-exist", nil, nil); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestRegistryRegisterAndNew(t *testing.T) {
	Register("stub", func(map[string]string, SecretLookup) (Sender, error) {
		return stubSender{}, nil
	})

	s, err := New("stub", nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Name() != "stub" {
		t.Fatalf("expected 'stub', got %q", s.Name())
	}

	found := false
	for _, name := range Available() {
		if name == "stub" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'stub' in Available(), got %v", Available())
	}
}

func TestRegistryDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register("dup", func(map[string]string, SecretLookup) (Sender, error) { return stubSender{}, nil })
	Register("dup", func(map[string]string, SecretLookup) (Sender, error) { return stubSender{}, nil })
}
