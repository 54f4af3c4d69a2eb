package validation

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"a@b", true},
		{"", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"user@", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.in); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPasswordError_Boundary(t *testing.T) {
	if msg := PasswordError("12345678"); msg != "" {
		t.Errorf("8 chars should be accepted, got %q", msg)
	}
	if msg := PasswordError("1234567"); msg != MsgPasswordTooShort {
		t.Errorf("7 chars: got %q, want %q", msg, MsgPasswordTooShort)
	}
	if msg := PasswordError(""); msg != MsgPasswordRequired {
		t.Errorf("empty: got %q, want %q", msg, MsgPasswordRequired)
	}
}

func TestCredentials(t *testing.T) {
	fe := Credentials("bad", "short")
	if fe["email"] != MsgEmailInvalid {
		t.Errorf("email: got %q", fe["email"])
	}
	if fe["password"] != MsgPasswordTooShort {
		t.Errorf("password: got %q", fe["password"])
	}

	if fe := Credentials("user@example.com", "longenough"); fe.Any() {
		t.Errorf("expected no errors, got %v", fe)
	}
}

func TestPostFields(t *testing.T) {
	fe := PostFields("", "", "")
	if len(fe) != 3 {
		t.Fatalf("want 3 errors, got %v", fe)
	}
	if fe["title"] != MsgTitleRequired || fe["slug"] != MsgSlugRequired || fe["markdown"] != MsgMarkdownRequired {
		t.Errorf("unexpected messages: %v", fe)
	}

	if fe := PostFields("t", "s", "m"); fe.Any() {
		t.Errorf("expected no errors, got %v", fe)
	}
}
