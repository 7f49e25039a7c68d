package export

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogoSVG(t *testing.T) {
	var buf bytes.Buffer
	LogoSVG(&buf, 64)
	out := buf.String()

	for _, want := range []string{
		`width="64"`,
		`viewBox="0 0 100 100"`,
		`d="` + logoPath + `"`,
		"stroke:#818cf8",
		"fill:#22d3ee",
		"<title>ADPF</title>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in svg:\n%s", want, out)
		}
	}
}

func TestInlineLogoSVGStripsProlog(t *testing.T) {
	out := inlineLogoSVG(48)
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("expected inline svg to start with <svg, got %q", firstLine(out))
	}
	for _, unwanted := range []string{"<?xml", "<!--"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("inline svg still contains %q", unwanted)
		}
	}
}

func TestLogoPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	if err := LogoPNG(path, 128); err != nil {
		t.Fatalf("LogoPNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("expected 128x128, got %v", b)
	}

	// The core is filled at the center of the logo area.
	area := 128.0 - 20
	cx, cy := int(64), int(area/2)
	r, g, b, _ := img.At(cx, cy).RGBA()
	if r>>8 != 0x22 || g>>8 != 0xd3 || b>>8 != 0xee {
		t.Errorf("expected core color at center, got %02x%02x%02x", r>>8, g>>8, b>>8)
	}
}

func TestLogoPNGTooSmall(t *testing.T) {
	if err := LogoPNG(filepath.Join(t.TempDir(), "x.png"), 8); err == nil {
		t.Error("expected error for tiny logo")
	}
}
