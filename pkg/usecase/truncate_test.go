package usecase

import (
	"strings"
	"testing"
)

func TestTruncateBody(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{
			name:  "Short body unchanged",
			input: "hello world",
			limit: 20,
			want:  "hello world",
		},
		{
			name:  "Exactly at limit unchanged",
			input: "12345",
			limit: 5,
			want:  "12345",
		},
		{
			name:  "Over limit truncated with marker",
			input: "123456789",
			limit: 5,
			want:  "12345…",
		},
		{
			name:  "CRLF normalized",
			input: "a\r\nb",
			limit: 20,
			want:  "a\nb",
		},
		{
			name:  "Whitespace trimmed before measuring",
			input: "   hello   ",
			limit: 5,
			want:  "hello",
		},
		{
			name:  "Empty body placeholder",
			input: "",
			limit: 20,
			want:  "(no content)",
		},
		{
			name:  "Whitespace-only body placeholder",
			input: " \r\n \n ",
			limit: 20,
			want:  "(no content)",
		},
		{
			name:  "Multibyte runes counted as one",
			input: "日本語のテキスト",
			limit: 4,
			want:  "日本語の…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateBody(tt.input, tt.limit)
			if got != tt.want {
				t.Errorf("truncateBody(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTruncateBody_Idempotent(t *testing.T) {
	const limit = 10

	inputs := []string{
		"short",
		strings.Repeat("x", limit),
		strings.Repeat("x", limit+1),
		strings.Repeat("x", limit*3),
	}

	for _, input := range inputs {
		once := truncateBody(input, limit)
		twice := truncateBody(once, limit)
		if once != twice {
			t.Errorf("truncateBody not idempotent: %q -> %q -> %q", input, once, twice)
		}

		// Result never exceeds limit plus the marker
		if n := len([]rune(once)); n > limit+1 {
			t.Errorf("truncateBody(%q) length %d exceeds limit+marker", input, n)
		}
	}
}
