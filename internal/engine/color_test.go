package engine

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDistance(t *testing.T) {
	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"0,0,0", "255,255,255"},
			{"220,20,60", "255,0,0"},
			{"10,20,30", "10,20,30"},
		}
		for _, p := range pairs {
			if d1, d2 := Distance(p[0], p[1]), Distance(p[1], p[0]); d1 != d2 {
				t.Errorf("Distance(%q,%q)=%v but Distance(%q,%q)=%v", p[0], p[1], d1, p[1], p[0], d2)
			}
		}
	})

	t.Run("identical is zero", func(t *testing.T) {
		if d := Distance("128,64,32", "128,64,32"); d != 0 {
			t.Errorf("distance to self = %v, want 0", d)
		}
	})

	t.Run("malformed yields infinity on either side", func(t *testing.T) {
		bad := []string{"", "1,2", "a,b,c", "1,2,3,4", "255;255;255"}
		for _, b := range bad {
			if d := Distance(b, "0,0,0"); !math.IsInf(d, 1) {
				t.Errorf("Distance(%q, valid) = %v, want +Inf", b, d)
			}
			if d := Distance("0,0,0", b); !math.IsInf(d, 1) {
				t.Errorf("Distance(valid, %q) = %v, want +Inf", b, d)
			}
		}
	})
}

func TestParseHex(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseHex("#FF8000")
		if err != nil {
			t.Fatalf("ParseHex: %v", err)
		}
		if got != [3]int{255, 128, 0} {
			t.Errorf("ParseHex = %v, want [255 128 0]", got)
		}
	})

	t.Run("leading hash optional", func(t *testing.T) {
		if _, err := ParseHex("00FF00"); err != nil {
			t.Errorf("ParseHex without hash: %v", err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, in := range []string{"#FFF", "#GGGGGG", "", "#FF80001"} {
			if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColorExpression) {
				t.Errorf("ParseHex(%q) err = %v, want ErrInvalidColorExpression", in, err)
			}
		}
	})
}

func TestRGBToHex(t *testing.T) {
	hex, ok := RGBToHex("220,20,60")
	if !ok || hex != "#DC143C" {
		t.Errorf("RGBToHex = %q (%v), want #DC143C", hex, ok)
	}
	if _, ok := RGBToHex("not-rgb"); ok {
		t.Error("RGBToHex should reject malformed input")
	}
}

func TestSplitComponents(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Red and White", []string{"Red", "White"}},
		{"Gold/White", []string{"Gold", "White"}},
		{"Blue & Silver", []string{"Blue", "Silver"}},
		{"Red, Gold, White", []string{"Red", "Gold", "White"}},
		{"Sandalwood", []string{"Sandalwood"}},
	}
	for _, tc := range tests {
		got := SplitComponents(tc.input)
		if len(got) != len(tc.want) {
			t.Errorf("SplitComponents(%q) = %v, want %v", tc.input, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("SplitComponents(%q)[%d] = %q, want %q", tc.input, i, got[i], tc.want[i])
			}
		}
	}
}

func TestSplitComponentsDoesNotSplitInsideWords(t *testing.T) {
	// "and" must only split as a whole word: "Sandalwood" stays intact.
	got := SplitComponents("Sandalwood and Ivory")
	if len(got) != 2 || got[0] != "Sandalwood" || got[1] != "Ivory" {
		t.Errorf("SplitComponents = %v, want [Sandalwood Ivory]", got)
	}
}

func TestRGBForName(t *testing.T) {
	s := newTestSnapshot()

	t.Run("cultural colour wins", func(t *testing.T) {
		rgb, ok := s.RGBForName("red")
		if !ok || rgb != "220,20,60" {
			t.Errorf("RGBForName(red) = %q (%v), want the first cultural entry", rgb, ok)
		}
	})

	t.Run("generic mapping", func(t *testing.T) {
		rgb, ok := s.RGBForName("navy")
		if !ok || rgb != "0,0,128" {
			t.Errorf("RGBForName(navy) = %q (%v), want 0,0,128", rgb, ok)
		}
	})

	t.Run("builtin fallback", func(t *testing.T) {
		rgb, ok := s.RGBForName("champagne")
		if !ok || rgb != "247,231,206" {
			t.Errorf("RGBForName(champagne) = %q (%v)", rgb, ok)
		}
	})

	t.Run("composite blends components", func(t *testing.T) {
		rgb, ok := s.RGBForName("white and black")
		if !ok {
			t.Fatal("expected composite name to resolve")
		}
		mid, err := parseRGB(rgb)
		if err != nil {
			t.Fatalf("blend produced malformed rgb %q", rgb)
		}
		for _, c := range mid {
			if c < 126 || c > 129 {
				t.Errorf("blend of white and black = %v, want mid grey", mid)
			}
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, ok := s.RGBForName("no-such-colour"); ok {
			t.Error("unknown colour should not resolve")
		}
	})
}

func TestSwatches(t *testing.T) {
	s := newTestSnapshot()

	swatches := s.Swatches("Red and Nonexistentium")
	if len(swatches) != 2 {
		t.Fatalf("got %d swatches, want 2", len(swatches))
	}
	if swatches[0].RGB == nil || swatches[0].Hex == nil {
		t.Error("known component should carry rgb and hex")
	}
	if swatches[1].RGB != nil || swatches[1].Hex != nil {
		t.Error("unknown component should yield nil rgb and hex, not fail")
	}
}

func TestResolveColor(t *testing.T) {
	s := newTestSnapshot()

	t.Run("existing colour returned unchanged", func(t *testing.T) {
		got, note := s.ResolveColor("Red", "Tamil Hindu Wedding")
		if got != "red" || note != "" {
			t.Errorf("ResolveColor = (%q, %q), want (red, empty)", got, note)
		}
	})

	t.Run("restricted name substituted with note", func(t *testing.T) {
		got, note := s.ResolveColor("black", "Tamil Hindu Wedding")
		if got != "red" {
			t.Errorf("ResolveColor = %q, want red (nearest to black)", got)
		}
		if !strings.Contains(note, "black") || !strings.Contains(note, "red") {
			t.Errorf("note %q should name both colours", note)
		}
	})

	t.Run("restricted name prefers configured default", func(t *testing.T) {
		got, note := s.ResolveColor("black", "Kandyan Wedding")
		if got != "default" {
			t.Errorf("ResolveColor = %q, want the configured default entry", got)
		}
		if note == "" {
			t.Error("expected a restriction note")
		}
	})

	t.Run("restriction beats existence", func(t *testing.T) {
		// White has a cultural entry for Tamil but is also restricted; the
		// restriction must win.
		got, note := s.ResolveColor("white", "Tamil Hindu Wedding")
		if got == "white" {
			t.Error("restricted colour returned despite restriction")
		}
		if note == "" {
			t.Error("expected a restriction note")
		}
	})

	t.Run("unknown colour maps by rgb distance", func(t *testing.T) {
		got, note := s.ResolveColor("crimson", "Tamil Hindu Wedding")
		if got != "red" || note != "" {
			t.Errorf("ResolveColor = (%q, %q), want (red, empty)", got, note)
		}
	})

	t.Run("default sentinel input resolves to default entry", func(t *testing.T) {
		got, _ := s.ResolveColor("default", "Kandyan Wedding")
		if got != "default" {
			t.Errorf("ResolveColor = %q, want the default entry name", got)
		}
	})

	t.Run("default sentinel without default entry", func(t *testing.T) {
		got, _ := s.ResolveColor("default", "Tamil Hindu Wedding")
		if got != "red" {
			t.Errorf("ResolveColor = %q, want first usable colour", got)
		}
	})

	t.Run("empty input falls back to default", func(t *testing.T) {
		got, note := s.ResolveColor("", "Kandyan Wedding")
		if got != "default" || note != "" {
			t.Errorf("ResolveColor = (%q, %q)", got, note)
		}
	})
}

func TestResolveColorNeverReturnsRestricted(t *testing.T) {
	s := newTestSnapshot()
	inputs := []string{
		"black", "white", "gray", "maroon", "red", "yellow", "crimson",
		"#000000", "#808080", "#800000", "#FF0000", "unheard-of", "default",
	}
	for _, weddingType := range []string{"Kandyan Wedding", "Tamil Hindu Wedding", "Christian Wedding"} {
		for _, in := range inputs {
			got, _ := s.ResolveColor(in, weddingType)
			if s.IsRestricted(weddingType, got) {
				t.Errorf("ResolveColor(%q, %q) = %q which is restricted", in, weddingType, got)
			}
		}
	}
}
