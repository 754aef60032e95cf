package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEntryName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "card-01.png"},
		{8, "card-09.png"},
		{11, "card-12.png"},
		{99, "card-100.png"},
	}
	for _, tc := range tests {
		if got := EntryName(tc.index); got != tc.want {
			t.Fatalf("EntryName(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

func TestPercentSequence(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  []int
	}{
		{"three", 3, []int{33, 67, 100}},
		{"eight", 8, []int{13, 25, 38, 50, 63, 75, 88, 100}},
		{"one", 1, []int{100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k := 1; k <= tc.total; k++ {
				if got := Percent(k, tc.total); got != tc.want[k-1] {
					t.Fatalf("Percent(%d,%d) = %d, want %d", k, tc.total, got, tc.want[k-1])
				}
			}
		})
	}
	if Percent(0, 0) != 100 {
		t.Fatalf("empty job should report 100")
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	a := NewArchive(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC))
	for i := 0; i < 3; i++ {
		if err := a.Add(EntryName(i), []byte{byte(i)}); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.Add(EntryName(0), nil); !errors.Is(err, ErrDuplicateEntry) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	data, err := a.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Add("late.png", nil); !errors.Is(err, ErrArchiveFinalized) {
		t.Fatalf("expected finalized error, got %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(zr.File))
	}
	for i, f := range zr.File {
		if f.Name != EntryName(i) {
			t.Fatalf("entry %d = %q, want %q", i, f.Name, EntryName(i))
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, _ := io.ReadAll(rc)
		rc.Close()
		if len(b) != 1 || b[0] != byte(i) {
			t.Fatalf("entry %d payload = %v", i, b)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 4 || decoded.Bounds().Dy() != 2 {
		t.Fatalf("unexpected bounds %v", decoded.Bounds())
	}
	if _, err := EncodePNG(nil); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

func TestFileSaver(t *testing.T) {
	dir := t.TempDir()
	s := NewFileSaver(filepath.Join(dir, "out"))

	path, err := s.Save("cards.zip", []byte("zip"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "zip" {
		t.Fatalf("saved %q", got)
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Fatalf("expected lock file to be cleaned up, stat err=%v", err)
	}

	if _, err := s.Save("cards.zip", []byte("again")); err != nil {
		t.Fatal(err)
	}
	got, _ = os.ReadFile(path)
	if string(got) != "again" {
		t.Fatalf("expected overwrite, got %q", got)
	}

	if _, err := s.Save("../escape.zip", nil); err == nil {
		t.Fatalf("expected error for path-like name")
	}
}
