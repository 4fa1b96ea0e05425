package markup

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("Maintenance **tonight**")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(html, "<strong>tonight</strong>") {
		t.Errorf("Expected emphasis to be rendered, got: %s", html)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	html, err := RenderMarkdown("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if html != "" {
		t.Errorf("Expected empty output, got: %s", html)
	}
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	html, err := RenderMarkdown("<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if strings.Contains(html, "<script>") {
		t.Errorf("Expected raw HTML to be suppressed, got: %s", html)
	}
}
