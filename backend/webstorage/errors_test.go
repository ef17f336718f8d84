package webstorage

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsQuotaExceeded(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&Error{Op: "setItem", Key: "k", Name: "QuotaExceededError", Err: errors.New("full")}, true},
		{&Error{Op: "setItem", Key: "k", Name: "NS_ERROR_DOM_QUOTA_REACHED", Err: errors.New("full")}, true},
		{fmt.Errorf("wrapped: %w", &Error{Op: "setItem", Name: "QuotaExceededError", Err: errors.New("full")}), true},
		{&Error{Op: "open", Name: "SecurityError", Err: errors.New("denied")}, false},
		{ErrUnavailable, false},
		{nil, false},
	}
	for i, tc := range cases {
		if got := IsQuotaExceeded(tc.err); got != tc.want {
			t.Fatalf("case %d: IsQuotaExceeded(%v)=%v want %v", i, tc.err, got, tc.want)
		}
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	inner := errors.New("boom")
	e := &Error{Op: "setItem", Key: "app:x", Name: "QuotaExceededError", Err: inner}
	if !errors.Is(e, inner) {
		t.Fatalf("errors.Is should reach inner error")
	}
	msg := e.Error()
	for _, want := range []string{"setItem", `"app:x"`, "QuotaExceededError", "boom"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
	open := (&Error{Op: "open", Name: "SecurityError", Err: inner}).Error()
	if strings.Contains(open, `""`) {
		t.Fatalf("open error should omit empty key: %q", open)
	}
}
