package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestMarkdownRendererRenders(t *testing.T) {
	r := NewMarkdownRendererWithTheme(60, TestTheme())

	out, err := r.Render("## Title\n\n| A | B |\n|---|---|\n| x | y |\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	plain := ansi.Strip(out)
	if !strings.Contains(plain, "Title") || !strings.Contains(plain, "x") {
		t.Errorf("Expected heading and cell text, got:\n%s", plain)
	}
}

func TestMarkdownRendererSetWidth(t *testing.T) {
	r := NewMarkdownRendererWithTheme(60, TestTheme())
	before := r.tr
	r.SetWidth(60)
	if r.tr != before {
		t.Error("Expected renderer reuse for unchanged width")
	}
	r.SetWidth(90)
	if r.width != 90 {
		t.Errorf("Expected width 90, got %d", r.width)
	}
	r.SetWidth(5)
	if r.width != minContentWidth {
		t.Errorf("Expected width clamped to %d, got %d", minContentWidth, r.width)
	}
}

func TestNilMarkdownRenderer(t *testing.T) {
	var r *MarkdownRenderer
	out, err := r.Render("plain")
	if err != nil || out != "plain" {
		t.Errorf("Expected passthrough, got %q, %v", out, err)
	}
}

func TestCompressBlankLines(t *testing.T) {
	in := "a\n\n\n\n\nb"
	if got := compressBlankLines(in); got != "a\n\n\nb" {
		t.Errorf("compressBlankLines = %q", got)
	}
}
