package session

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/aoc/pkg/errors"
)

var testToken = strings.Repeat("ab12", 24)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		token string
		code  errors.Code
	}{
		{"valid", testToken, ""},
		{"trimmed", "  " + testToken + "\n", ""},
		{"empty", "", errors.ErrCodeUnauthorized},
		{"not hex", strings.Repeat("zz", 40), errors.ErrCodeUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := New(tt.token, DefaultTTL)
			if tt.code != "" {
				if !errors.Is(err, tt.code) {
					t.Fatalf("New() error = %v, want %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if sess.Token != testToken || sess.ID == "" || sess.IsExpired() {
				t.Errorf("New() = %+v", sess)
			}
		})
	}
}

func TestMasked(t *testing.T) {
	s := &Session{Token: "abcdef12"}
	if got := s.Masked(); got != "****ef12" {
		t.Errorf("Masked() = %q", got)
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if sess, err := store.Get(ctx); sess != nil || err != nil {
		t.Fatalf("Get() on empty store = %v, %v", sess, err)
	}

	sess, _ := New(testToken, time.Hour)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("session file mode = %o, want 600", perm)
	}

	got, err := store.Get(ctx)
	if err != nil || got == nil || got.Token != testToken || got.ID != sess.ID {
		t.Fatalf("Get() = %+v, %v", got, err)
	}

	if err := store.Delete(ctx); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx); err != nil {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestFileStoreExpired(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	sess, _ := New(testToken, -time.Minute)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if got, err := store.Get(ctx); got != nil || err != nil {
		t.Errorf("Get() expired = %v, %v", got, err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("expired session file should be removed")
	}
}

func TestToken(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	sess, _ := New(testToken, time.Hour)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatal(err)
	}

	t.Setenv("AOC_SESSION", "")
	if got, _ := Token(ctx, store); got != testToken {
		t.Errorf("Token() = %q, want stored token", got)
	}

	t.Setenv("AOC_SESSION", "fromenv")
	if got, _ := Token(ctx, store); got != "fromenv" {
		t.Errorf("Token() = %q, want env override", got)
	}
}
