package redactor

import (
	"math"
	"strings"
	"testing"
)

func TestShannonEntropy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"empty", "", 0},
		{"single repeated char", "aaaaaaaa", 0},
		{"two chars evenly", "abababab", 1.0},
		{"four chars evenly", "abcdabcd", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shannonEntropy(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("shannonEntropy(%q) = %f, want %f", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksLikeSecret(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"mixed case with digits", "A7f3K9mQ2xP8vL4jR6tY1wZ5bN0cD3eH", true},
		{"uuid rejected", "d9428888-122b-11e1-b85c-61cd3cbb3210", false},
		{"uppercase uuid rejected", "D9428888-122B-11E1-B85C-61CD3CBB3210", false},
		{"too many dots rejected", "Com.example.Service9.internal.Name", false},
		{"no digits rejected", "AbcdefgHijklmnoPqrstuvWxyzabcdef", false},
		{"no uppercase rejected", "abcdefg3hijklmno9qrstuv1wxyzabcd", false},
		{"no lowercase rejected", "ABCDEFG3HIJKLMNO9QRSTUV1WXYZABCD", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeSecret(tt.token); got != tt.want {
				t.Errorf("looksLikeSecret(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestFindHighEntropyTokens(t *testing.T) {
	secret := "A7f3K9mQ2xP8vL4jR6tY1wZ5bN0cD3eHgU2kM8n"

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "finds embedded secret",
			text: "the value " + secret + " leaked",
			want: []string{secret},
		},
		{
			name: "plain prose",
			text: "we deployed the new build to staging this afternoon",
			want: nil,
		},
		{
			name: "uuid ignored",
			text: "request id d9428888-122b-11e1-b85c-61cd3cbb3210 failed",
			want: nil,
		},
		{
			name: "long repetitive run ignored",
			text: "padding aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaA1 end",
			want: nil,
		},
		{
			name: "short random token ignored",
			text: "nonce A7f3K9mQ2xP8 done",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindHighEntropyTokens(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("FindHighEntropyTokens() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestEntropyOptIn verifies the engine only runs the entropy pass when asked.
func TestEntropyOptIn(t *testing.T) {
	withQuietIdentity(t)
	secret := "A7f3K9mQ2xP8vL4jR6tY1wZ5bN0cD3eHgU2kM8n"
	text := "value " + secret + " here"

	off := Redact(text, Options{Enabled: true})
	if off.Text != text {
		t.Errorf("Expected entropy pass to be off by default, got: %s", off.Text)
	}

	on := Redact(text, Options{Enabled: true, RedactHighEntropy: true})
	if strings.Contains(on.Text, secret) {
		t.Errorf("Expected secret to be gone, got: %s", on.Text)
	}
	if !strings.Contains(on.Text, "[REDACTED:high-entropy]") {
		t.Errorf("Expected high-entropy placeholder, got: %s", on.Text)
	}
	if !containsType(on.Types, "high-entropy") {
		t.Errorf("Expected high-entropy type, got: %v", on.Types)
	}
}
