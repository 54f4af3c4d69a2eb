package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmaltsev/journal/internal/common"
)

func newTestSessions() *Sessions {
	return NewSessions([]byte("test-secret"), 24*time.Hour, 7*24*time.Hour)
}

func TestSessions_IssueResolveRoundTrip(t *testing.T) {
	s := newTestSessions()

	for _, remember := range []bool{false, true} {
		token, err := s.Issue("user-1", remember)
		if err != nil {
			t.Fatalf("Issue(remember=%v) error: %v", remember, err)
		}

		userID, err := s.Resolve(token)
		if err != nil {
			t.Fatalf("Resolve(remember=%v) error: %v", remember, err)
		}
		if userID != "user-1" {
			t.Errorf("Resolve = %q, want user-1", userID)
		}
	}
}

func TestSessions_TTLDependsOnRemember(t *testing.T) {
	s := newTestSessions()

	if got := s.TTL(false); got != 24*time.Hour {
		t.Errorf("TTL(false) = %v", got)
	}
	if got := s.TTL(true); got != 7*24*time.Hour {
		t.Errorf("TTL(true) = %v", got)
	}
}

func TestSessions_ExpiredTokenRejected(t *testing.T) {
	// Negative lifetimes produce tokens that are expired on arrival.
	s := NewSessions([]byte("test-secret"), -time.Minute, -time.Minute)

	token, err := s.Issue("user-1", false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := s.Resolve(token); !errors.Is(err, common.ErrInvalidToken) {
		t.Errorf("expired token: got %v, want ErrInvalidToken", err)
	}
}

func TestSessions_WrongSecretRejected(t *testing.T) {
	s := newTestSessions()
	other := NewSessions([]byte("other-secret"), 24*time.Hour, 7*24*time.Hour)

	token, err := s.Issue("user-1", false)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := other.Resolve(token); !errors.Is(err, common.ErrInvalidToken) {
		t.Errorf("foreign signature: got %v, want ErrInvalidToken", err)
	}
}

func TestSessions_MalformedTokensRejected(t *testing.T) {
	s := newTestSessions()

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		if _, err := s.Resolve(token); !errors.Is(err, common.ErrInvalidToken) {
			t.Errorf("Resolve(%q): got %v, want ErrInvalidToken", token, err)
		}
	}
}
