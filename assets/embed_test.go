package assets

import (
	"testing"

	"github.com/milk9111/papercards/prefabs"
)

func TestDeckAssetsAreEmbedded(t *testing.T) {
	deck, err := prefabs.LoadDeckSpec("")
	if err != nil {
		t.Fatalf("load deck: %v", err)
	}
	images := append([]string{deck.Background}, deck.PaperBackgrounds...)
	images = append(images, deck.SneakPeek.Images...)
	for _, name := range images {
		if _, err := DecodeImage(name); err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
	}
	for _, track := range deck.Playlist.Tracks {
		if _, err := LoadAudio(track.File); err != nil {
			t.Fatalf("load %s: %v", track.File, err)
		}
	}
}

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bg.png", "bg.png"},
		{"assets/bg.png", "bg.png"},
		{"/home/x/assets/audio/track1.wav", "audio/track1.wav"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := cleanAssetPath(tc.in); got != tc.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
