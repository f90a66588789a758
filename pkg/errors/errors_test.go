package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain", Input("line %d: %q", 3, "forward x"), `INVALID_INPUT: line 3: "forward x"`},
		{"no solution", NoSolution("no winning board"), "NO_SOLUTION: no winning board"},
		{"wrapped", Wrap(ErrCodeNetwork, errors.New("connection reset"), "download 2021 day 4"), "NETWORK_ERROR: download 2021 day 4: connection reset"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("eof")
	err := Wrap(ErrCodeNetwork, cause, "read body")
	if errors.Unwrap(err) != cause || !errors.Is(err, cause) {
		t.Errorf("Wrap() chain lost cause: %v", err)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", Input("bad"), ErrCodeInvalidInput, true},
		{"different code", Input("bad"), ErrCodeNotFound, false},
		{"through fmt.Errorf", fmt.Errorf("2022/16/2: %w", New(ErrCodeUnsolved, "no part 2")), ErrCodeUnsolved, true},
		{"outermost code wins", Wrap(ErrCodeRateLimited, New(ErrCodeNetwork, "x"), "y"), ErrCodeNetwork, false},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"nil error", nil, ErrCodeInternal, false},
		{"empty code", errors.New("plain"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Input("bad line")); got != ErrCodeInvalidInput {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeInvalidInput)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"structured", New(ErrCodeNotFound, "no input for 2021/3"), "no input for 2021/3"},
		{"plain", errors.New("boom"), "boom"},
		{"nested", Wrap(ErrCodeNetwork, New(ErrCodeUnauthorized, "session expired"), "fetch 2022/1"), "fetch 2022/1: session expired"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	err := Wrap(ErrCodeRateLimited, &RetryAfter{Wait: 30 * time.Second}, "download 2022 day 1")
	if !Is(err, ErrCodeRateLimited) {
		t.Fatalf("Is(RATE_LIMITED) = false for %v", err)
	}
	var ra *RetryAfter
	if !errors.As(err, &ra) || ra.Wait != 30*time.Second {
		t.Errorf("errors.As(RetryAfter) = %v", ra)
	}
	if got := ra.Error(); got != "rate limited: retry after 30s" {
		t.Errorf("Error() = %q", got)
	}
	if (&RetryAfter{}).Error() != "rate limited" {
		t.Error("zero Wait should omit the delay")
	}
}
