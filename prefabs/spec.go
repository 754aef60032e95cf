package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultDeck = "deck.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DeckSpec describes everything on the table: cards, music, the hidden
// signature, the sneak peek and export settings.
type DeckSpec struct {
	Name             string        `yaml:"name"`
	Background       string        `yaml:"background"`
	PaperBackgrounds []string      `yaml:"paper_backgrounds"`
	Card             CardStyleSpec `yaml:"card"`
	Cards            []CardSpec    `yaml:"cards"`
	Signature        SignatureSpec `yaml:"signature"`
	Playlist         PlaylistSpec  `yaml:"playlist"`
	Export           ExportSpec    `yaml:"export"`
	SneakPeek        SneakPeekSpec `yaml:"sneak_peek"`
}

type CardStyleSpec struct {
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	RotationRange float64   `yaml:"rotation_range"`
	Ink           YAMLColor `yaml:"ink"`
	Paper         YAMLColor `yaml:"paper"`
}

type CardSpec struct {
	ID      string  `yaml:"id"`
	Message string  `yaml:"message"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type SignatureSpec struct {
	Card           string `yaml:"card"`
	Message        string `yaml:"message"`
	Hint           string `yaml:"hint"`
	HoldMS         int    `yaml:"hold_ms"`
	TypeIntervalMS int    `yaml:"type_interval_ms"`
}

func (s SignatureSpec) Hold() time.Duration {
	return time.Duration(s.HoldMS) * time.Millisecond
}

func (s SignatureSpec) TypeInterval() time.Duration {
	return time.Duration(s.TypeIntervalMS) * time.Millisecond
}

type PlaylistSpec struct {
	MaxVolume    float64     `yaml:"max_volume"`
	FadeDuration float64     `yaml:"fade_duration"`
	Tracks       []TrackSpec `yaml:"tracks"`
}

type TrackSpec struct {
	File string  `yaml:"file"`
	Gain float64 `yaml:"gain"`
}

type ExportSpec struct {
	FileName string  `yaml:"file_name"`
	Scale    float64 `yaml:"scale"`
	SettleMS int     `yaml:"settle_ms"`
}

func (e ExportSpec) Settle() time.Duration {
	return time.Duration(e.SettleMS) * time.Millisecond
}

type SneakPeekSpec struct {
	Images []string `yaml:"images"`
}

func LoadDeckSpec(name string) (*DeckSpec, error) {
	if name == "" {
		name = DefaultDeck
	}
	spec, err := LoadSpec[DeckSpec](name)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

// Validate rejects decks the builders cannot lay out.
func (d *DeckSpec) Validate() error {
	seen := make(map[string]bool, len(d.Cards))
	for i, c := range d.Cards {
		if strings.TrimSpace(c.ID) == "" {
			return fmt.Errorf("card %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate card id %q", c.ID)
		}
		seen[c.ID] = true
	}
	if d.Signature.Card != "" && !seen[d.Signature.Card] {
		return fmt.Errorf("signature card %q is not in the deck", d.Signature.Card)
	}
	for i, t := range d.Playlist.Tracks {
		if t.File == "" {
			return fmt.Errorf("track %d has no file", i)
		}
		if t.Gain < 0 {
			return fmt.Errorf("track %s has negative gain", t.File)
		}
	}
	return nil
}

// PaperBackground returns the background image for the card at index,
// cycling through the list.
func (d *DeckSpec) PaperBackground(index int) string {
	if len(d.PaperBackgrounds) == 0 {
		return ""
	}
	return d.PaperBackgrounds[index%len(d.PaperBackgrounds)]
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c, or fallback when the color was not set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
