package prefabs

import (
	"image/color"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadDefaultDeck(t *testing.T) {
	deck, err := LoadDeckSpec("")
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	if len(deck.Cards) == 0 {
		t.Fatalf("expected cards in the default deck")
	}
	if deck.Signature.Card == "" || deck.Signature.Hold() <= 0 {
		t.Fatalf("expected a signature card with a hold time")
	}
	if len(deck.Playlist.Tracks) != 3 {
		t.Fatalf("expected three tracks, got %d", len(deck.Playlist.Tracks))
	}
}

func TestDeckValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"ok", "cards: [{id: a}, {id: b}]", ""},
		{"missing_id", "cards: [{message: hi}]", "no id"},
		{"duplicate", "cards: [{id: a}, {id: a}]", "duplicate"},
		{"unknown_signature", "cards: [{id: a}]\nsignature: {card: z}", "signature card"},
		{"track_without_file", "playlist: {tracks: [{gain: 1}]}", "no file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d DeckSpec
			if err := yaml.Unmarshal([]byte(tc.yaml), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			err := d.Validate()
			if tc.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestPaperBackgroundCycles(t *testing.T) {
	d := DeckSpec{PaperBackgrounds: []string{"a", "b"}}
	got := []string{d.PaperBackground(0), d.PaperBackground(1), d.PaperBackground(2)}
	if strings.Join(got, ",") != "a,b,a" {
		t.Fatalf("backgrounds = %v", got)
	}
	if (&DeckSpec{}).PaperBackground(3) != "" {
		t.Fatalf("expected no background for an empty list")
	}
}

func TestYAMLColor(t *testing.T) {
	var spec struct {
		C YAMLColor `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte(`c: "#ff000080"`), &spec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if spec.C.Color != (color.NRGBA{R: 255, A: 128}) {
		t.Fatalf("color = %#v", spec.C.Color)
	}
	var unset YAMLColor
	if unset.Or(color.White) != color.White {
		t.Fatalf("Or should fall back when unset")
	}
}
