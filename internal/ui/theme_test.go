package ui

import "testing"

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	if err := SetTheme(ThemeNord); err != nil {
		t.Fatalf("SetTheme(nord): %v", err)
	}
	if got := CurrentThemeName(); got != ThemeNord {
		t.Errorf("CurrentThemeName = %q, want nord", got)
	}

	if err := SetTheme("no-such-theme"); err == nil {
		t.Error("unknown theme should fail")
	}
	if got := CurrentThemeName(); got != ThemeNord {
		t.Errorf("failed SetTheme changed the theme to %q", got)
	}

	if err := SetTheme(""); err != nil {
		t.Fatalf("SetTheme(\"\"): %v", err)
	}
	if got := CurrentThemeName(); got != DefaultTheme {
		t.Errorf("empty name should select the default, got %q", got)
	}
}

func TestBuiltinThemesAreComplete(t *testing.T) {
	for _, name := range ThemeNames() {
		th := BuiltinThemes[name]
		if th.Name == "" || th.Primary == "" || th.Text == "" || th.Me == "" || th.Other == "" || th.Error == "" {
			t.Errorf("theme %q is missing colors: %+v", name, th)
		}
	}
}
