package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("**bold** text")
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("Expected bold markup, got %s", html)
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	html := RenderMarkdown("hello <script>alert('x')</script> world")
	if strings.Contains(html, "<script") {
		t.Errorf("Script tag survived sanitization: %s", html)
	}
	if !strings.Contains(html, "hello") {
		t.Errorf("Legitimate content was dropped: %s", html)
	}
}
