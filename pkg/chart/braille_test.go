package chart

import (
	"strings"
	"testing"

	"sciview/pkg/dataset"
)

func TestRenderBrailleShape(t *testing.T) {
	s := dataset.Series{{X: 0, Y: 1}, {X: 1, Y: 5}, {X: 2, Y: 1}}
	out := RenderBraille(s, s.Range(), 10, 4)

	rows := strings.Split(out, "\n")
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 10 {
			t.Errorf("row %d: expected 10 glyphs, got %d", i, n)
		}
	}
}

func TestRenderBrailleOnlyBrailleRunes(t *testing.T) {
	s := dataset.Series{{X: 0, Y: 0}, {X: 5, Y: 2}, {X: 10, Y: -3}}
	out := RenderBraille(s, s.Range(), 8, 3)

	for _, r := range out {
		if r == '\n' {
			continue
		}
		if r < 0x2800 || r > 0x28FF {
			t.Fatalf("unexpected rune %q in braille output", r)
		}
	}
}

func TestRenderBrailleDeterministic(t *testing.T) {
	s := make(dataset.Series, 500)
	for i := range s {
		s[i] = dataset.Point{X: float64(i), Y: float64(i % 17)}
	}
	r := s.Range()

	a := RenderBraille(s, r, 20, 8)
	b := RenderBraille(s, r, 20, 8)
	if a != b {
		t.Error("identical arguments must yield byte-identical output")
	}
}

func TestRenderBrailleEmptyDimensions(t *testing.T) {
	s := dataset.Series{{X: 0, Y: 0}}
	if out := RenderBraille(s, s.Range(), 0, 5); out != "" {
		t.Errorf("zero width should render nothing, got %q", out)
	}
	if out := RenderBraille(s, s.Range(), 5, 0); out != "" {
		t.Errorf("zero height should render nothing, got %q", out)
	}
}

func TestFormatAxisValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{2500000, "2.5e+06"},
		{0.0001, "1.0e-04"},
		{1234, "1234"},
		{12.5, "12.50"},
		{0.5, "0.500"},
		{-42.0, "-42.00"},
	}
	for _, c := range cases {
		if got := FormatAxisValue(c.in); got != c.want {
			t.Errorf("FormatAxisValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
