package handler

import (
	"strings"
	"testing"
)

func TestRenderRichText(t *testing.T) {
	html := renderRichText("# Heading\n\nSome **bold** text.")
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("unexpected markdown output: %q", html)
	}

	if got := renderRichText(""); got != "" {
		t.Fatalf("expected empty output for empty input, got %q", got)
	}
}

func TestRenderRichTextSanitizesScripts(t *testing.T) {
	html := renderRichText("Hello <script>alert('x')</script> world")
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tag survived sanitization: %q", html)
	}
	if !strings.Contains(html, "Hello") {
		t.Fatalf("expected text preserved, got %q", html)
	}
}
