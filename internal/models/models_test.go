package models

import "testing"

func TestPresetFromName(t *testing.T) {
	tests := []struct {
		name   string
		want   Preset
		wantOK bool
	}{
		{name: "fast", want: PresetFast, wantOK: true},
		{name: "quality", want: PresetQuality, wantOK: true},
		{name: "gpt-4.1-mini-2025-04-1", want: PresetFast, wantOK: true},
		{name: "claude-sonnet-4-5-20250929", want: PresetQuality, wantOK: true},
		{name: "", wantOK: false},
		{name: "Fast", wantOK: false},
		{name: "gpt-4", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PresetFromName(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("PresetFromName(%q) ok = %t, want %t", tt.name, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("PresetFromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestAllPresets(t *testing.T) {
	presets := AllPresets()
	if len(presets) != 2 {
		t.Fatalf("AllPresets() returned %d presets, want 2", len(presets))
	}

	for _, p := range presets {
		if p.Name == "" || p.ID == "" || p.DisplayName == "" {
			t.Errorf("preset %+v has empty fields", p)
		}
	}

	if presets[0] != PresetFast || presets[1] != PresetQuality {
		t.Errorf("AllPresets() order = %v", presets)
	}
}

func TestDefaultHeaders(t *testing.T) {
	headers := DefaultHeaders()

	if got := headers["anthropic-version"]; got != APIVersion {
		t.Errorf("anthropic-version = %q, want %q", got, APIVersion)
	}
	if got := headers["Content-Type"]; got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if _, ok := headers["x-api-key"]; ok {
		t.Error("DefaultHeaders must not include the credential")
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range []Role{RoleSystem, RoleUser, RoleAssistant} {
		if !IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = false", r)
		}
	}
	if IsValidRole("tool") {
		t.Error("IsValidRole(\"tool\") = true")
	}
	if IsValidRole("") {
		t.Error("IsValidRole(\"\") = true")
	}
}
