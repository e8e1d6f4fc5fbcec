package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/milk9111/scenestep/scene"
	"github.com/milk9111/scenestep/scenes"
)

func TestWalkStartsAtCurrentPosition(t *testing.T) {
	spec, err := scenes.LoadSceneSpec("intro")
	if err != nil {
		t.Fatalf("LoadSceneSpec: %v", err)
	}

	cases := []struct {
		name  string
		start int
		want  []string
	}{
		{"from_zero", 0, []string{"0", "1", "2", "3", "4"}},
		{"from_two", 2, []string{"2", "3", "4"}},
		{"from_last", 4, []string{"4"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := spec
			s.Start = c.start
			b := &binder{text: &scene.MemoryText{}, music: &scene.MemoryAudio{}}
			m, err := s.Open(b, t.TempDir(), log.New(&bytes.Buffer{}, "", 0))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer m.Teardown()

			rows, err := walk(m, b)
			if err != nil {
				t.Fatalf("walk: %v", err)
			}
			if len(rows) != len(c.want) {
				t.Fatalf("got %d rows, want %d: %q", len(rows), len(c.want), rows)
			}
			for i, r := range rows {
				if pos, _, _ := strings.Cut(r, "\t"); pos != c.want[i] {
					t.Fatalf("row %d starts at position %s, want %s", i, pos, c.want[i])
				}
			}
		})
	}
}
