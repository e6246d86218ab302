package render

import (
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("Width = %d, want 80", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("Style = %q, want dark", opts.Style)
	}
	if !opts.EnableEmoji || !opts.PreserveNewLines {
		t.Errorf("emoji/newline defaults = %t/%t, want true/true", opts.EnableEmoji, opts.PreserveNewLines)
	}
}

func TestOptionsBuilders(t *testing.T) {
	base := DefaultOptions()
	modified := base.WithWidth(120).WithStyle("light")

	if modified.Width != 120 || modified.Style != "light" {
		t.Errorf("modified = %+v", modified)
	}
	// Value receivers: the base must be untouched
	if base.Width != 80 || base.Style != "dark" {
		t.Errorf("base mutated: %+v", base)
	}
}

func TestCacheKey(t *testing.T) {
	a := cacheKey(DefaultOptions())
	b := cacheKey(DefaultOptions().WithWidth(100))
	c := cacheKey(DefaultOptions())

	if a == b {
		t.Error("different widths must yield different cache keys")
	}
	if a != c {
		t.Error("identical options must yield the same cache key")
	}
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Title\n\nsome *body* text", DefaultOptions())
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Errorf("rendered output missing heading text:\n%s", out)
	}
}

func TestLoadOptionsFromConfig_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GLAMOUR_STYLE", "notty")

	opts := LoadOptionsFromConfig()
	if opts.Style != "notty" {
		t.Errorf("Style = %q, want GLAMOUR_STYLE override", opts.Style)
	}
}

func TestLoadOptionsFromConfigWithWidth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GLAMOUR_STYLE", "")

	opts := LoadOptionsFromConfigWithWidth(64)
	if opts.Width != 64 {
		t.Errorf("Width = %d, want 64", opts.Width)
	}
}
