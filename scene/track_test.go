package scene

import (
	"image/color"
	"testing"
)

func sprite(key string) Slot[string] {
	return Slot[string]{Value: key, Present: true}
}

func TestSpriteTrackResolvesNearestBackward(t *testing.T) {
	track := NewSpriteTrack([]Slot[string]{sprite("a"), {}, {}, sprite("d"), {}})

	cases := []struct {
		name string
		pos  int
		want string
	}{
		{"exact_first", 0, "a"},
		{"gap_after_first", 1, "a"},
		{"second_gap", 2, "a"},
		{"exact_later", 3, "d"},
		{"after_later", 4, "d"},
		{"clamped_high", 40, "d"},
		{"clamped_low", -3, "a"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := track.Resolve(c.pos, "fallback")
			if !ok {
				t.Fatalf("expected a defined slot at or before %d", c.pos)
			}
			if got != c.want {
				t.Fatalf("Resolve(%d) = %q, want %q", c.pos, got, c.want)
			}
			again, _ := track.Resolve(c.pos, "fallback")
			if again != got {
				t.Fatalf("Resolve(%d) not stable: %q then %q", c.pos, got, again)
			}
		})
	}
}

func TestTrackMissReturnsFallback(t *testing.T) {
	track := NewSpriteTrack([]Slot[string]{{}, {}, sprite("c")})

	got, ok := track.Resolve(1, "shown")
	if ok {
		t.Fatalf("expected a miss before the first defined slot")
	}
	if got != "shown" {
		t.Fatalf("miss should return the fallback, got %q", got)
	}

	empty := NewSpriteTrack[string](nil)
	if _, ok := empty.Resolve(0, "x"); ok {
		t.Fatalf("empty track should never resolve")
	}
}

func TestTextureTrackSuppress(t *testing.T) {
	track := NewTextureTrack([]Slot[string]{
		sprite("day"),
		{},
		{Suppress: true},
		{},
		{Value: "night", Present: true, Suppress: true},
		sprite("dawn"),
	})

	cases := []struct {
		name string
		pos  int
		want string
	}{
		{"value", 0, "day"},
		{"inherits_value", 1, "day"},
		{"suppressed", 2, ""},
		{"inherits_blank", 3, ""},
		{"suppress_wins_over_value", 4, ""},
		{"value_after_blank", 5, "dawn"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := track.Resolve(c.pos, "fallback")
			if !ok {
				t.Fatalf("expected resolution at %d", c.pos)
			}
			if got != c.want {
				t.Fatalf("Resolve(%d) = %q, want %q", c.pos, got, c.want)
			}
		})
	}
}

func TestColorTrackOnlyUsesFlaggedSlots(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	track := NewColorTrack([]Slot[color.RGBA]{
		{Value: red, Use: true},
		{Value: blue},
		{Value: blue, Use: true},
	})

	if got, _ := track.Resolve(1, color.RGBA{}); got != red {
		t.Fatalf("slot without use flag should be skipped, got %v", got)
	}
	if got, _ := track.Resolve(2, color.RGBA{}); got != blue {
		t.Fatalf("flagged slot should win, got %v", got)
	}
}

func TestSeedOnlyFillsUndefinedFirstSlot(t *testing.T) {
	t.Run("sprite_seeded", func(t *testing.T) {
		track := NewSpriteTrack([]Slot[string]{{}, {}})
		track.Seed("start")
		if got, ok := track.Resolve(1, "other"); !ok || got != "start" {
			t.Fatalf("seeded track should resolve to start, got %q ok=%v", got, ok)
		}
	})

	t.Run("sprite_kept", func(t *testing.T) {
		track := NewSpriteTrack([]Slot[string]{sprite("authored")})
		track.Seed("start")
		if got, _ := track.Resolve(0, ""); got != "authored" {
			t.Fatalf("defined slot 0 must not be overwritten, got %q", got)
		}
	})

	t.Run("color_seeded_becomes_authoritative", func(t *testing.T) {
		gray := color.RGBA{R: 10, G: 10, B: 10, A: 255}
		track := NewColorTrack([]Slot[color.RGBA]{{}, {}})
		track.Seed(gray)
		got, ok := track.Resolve(1, color.RGBA{})
		if !ok || got != gray {
			t.Fatalf("seeded color should resolve, got %v ok=%v", got, ok)
		}
	})

	t.Run("texture_suppress_kept", func(t *testing.T) {
		track := NewTextureTrack([]Slot[string]{{Suppress: true}})
		track.Seed("start")
		if got, _ := track.Resolve(0, "x"); got != "" {
			t.Fatalf("suppressed slot 0 must stay blank, got %q", got)
		}
	})
}
