package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPasswordHash("hunter2hunter2", hash) {
		t.Error("correct password did not verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password verified")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	h1, err := HashPassword("samesecret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("samesecret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same secret are identical; salt missing")
	}
	if !CheckPasswordHash("samesecret", h1) || !CheckPasswordHash("samesecret", h2) {
		t.Error("both digests must verify against the original secret")
	}
}

func TestCheckPasswordHash_MalformedFailsClosed(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if CheckPasswordHash("anything", hash) {
			t.Errorf("malformed hash %q verified", hash)
		}
	}
}

func TestBurnHashCycle_DoesNotPanic(t *testing.T) {
	BurnHashCycle("")
	BurnHashCycle("some-candidate-password")
}
