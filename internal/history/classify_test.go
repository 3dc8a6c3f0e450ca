package history

import (
	"testing"

	"github.com/rwalden/clipwatch/internal/store"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    store.ContentType
	}{
		{"function definition", "function foo() {}", store.ContentCode},
		{"prose", "just some prose.", store.ContentText},
		{"import line", "import os\nprint(1)", store.ContentCode},
		{"const declaration", "const x = 1", store.ContentCode},
		{"arrow function", "x => x + 1", store.ContentCode},
		{"line comment", "anything // trailing note", store.ContentCode},
		{"block comment", "/* header */ body", store.ContentCode},
		{"semicolon", "first; second", store.ContentCode},
		{"brackets", "list[0]", store.ContentCode},
		{"keyword mid-line", "we should import less furniture", store.ContentText},
		{"keyword without whitespace", "importannt typo here", store.ContentText},
		{"empty", "", store.ContentText},
		{"multiline prose", "dear reader\nthis is plain text\nsincerely", store.ContentText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectContentType(tt.content); got != tt.want {
				t.Errorf("DetectContentType(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 1},
		{"one line", 1},
		{"two\nlines", 2},
		{"trailing newline\n", 2},
		{"a\nb\nc", 3},
	}

	for _, tt := range tests {
		if got := CountLines(tt.content); got != tt.want {
			t.Errorf("CountLines(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

func TestPreview_Truncation(t *testing.T) {
	got := Preview("0123456789ABCDEF", 10)
	if got != "0123456789..." {
		t.Errorf("Preview = %q, want %q", got, "0123456789...")
	}
}

func TestPreview_ShortContentUnchanged(t *testing.T) {
	got := Preview("short", 10)
	if got != "short" {
		t.Errorf("Preview = %q, want %q", got, "short")
	}
}

func TestPreview_ExactLengthUnchanged(t *testing.T) {
	got := Preview("0123456789", 10)
	if got != "0123456789" {
		t.Errorf("Preview = %q, want %q", got, "0123456789")
	}
}

func TestPreview_CollapsesNewlinesAndTrims(t *testing.T) {
	got := Preview("  first\nsecond  ", 40)
	if got != "first second" {
		t.Errorf("Preview = %q, want %q", got, "first second")
	}
}

func TestPreview_MultibyteSafe(t *testing.T) {
	got := Preview("héllo wörld, this goes on", 5)
	if got != "héllo..." {
		t.Errorf("Preview = %q, want %q", got, "héllo...")
	}
}
