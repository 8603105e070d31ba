package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNewResolvesPreference(t *testing.T) {
	tests := []struct {
		name string
		pref string
		want language.Tag
	}{
		{"japanese", "ja", language.Japanese},
		{"english", "en", language.English},
		{"simplified", "zh-Hans", language.SimplifiedChinese},
		{"traditional", "zh-Hant", language.TraditionalChinese},
		{"regional fallback", "en-US", language.English},
		{"unsupported falls back to japanese", "fr", language.Japanese},
		{"garbage falls back to japanese", "???", language.Japanese},
		{"empty falls back to japanese", "", language.Japanese},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.pref).Tag()
			if got != tt.want {
				t.Errorf("New(%q).Tag() = %v, want %v", tt.pref, got, tt.want)
			}
		})
	}
}

func TestTranslateKnownKeys(t *testing.T) {
	if got := New("en").T("overlay.hold"); got != "Hold" {
		t.Errorf("en overlay.hold = %q", got)
	}
	if got := New("ja").T("overlay.hold"); got != "長押し" {
		t.Errorf("ja overlay.hold = %q", got)
	}
	if got := New("zh-Hans").T("game.running"); got != "游戏运行中" {
		t.Errorf("zh-Hans game.running = %q", got)
	}
}

func TestTranslateMissingKeyFallsBack(t *testing.T) {
	tr := New("ja")
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key should echo, got %q", got)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	ref := catalogs["ja"]
	for lang, msgs := range catalogs {
		if len(msgs) != len(ref) {
			t.Errorf("catalog %q has %d keys, want %d", lang, len(msgs), len(ref))
		}
		for key := range ref {
			if _, ok := msgs[key]; !ok {
				t.Errorf("catalog %q missing key %q", lang, key)
			}
		}
	}
}

func TestSupported(t *testing.T) {
	codes := Supported()
	if len(codes) != 4 || codes[0] != "ja" {
		t.Errorf("Supported() = %v", codes)
	}
}
