package scene

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestDialogueAt(t *testing.T) {
	surface := &MemoryText{SpeakerText: "Narrator"}
	d := NewDialogue([]Line{{Speaker: "A", Text: "hi"}, {Speaker: "B", Text: "yo"}}, surface)

	cases := []struct {
		name    string
		pos     int
		speaker string
		text    string
	}{
		{"first", 0, "A", "hi"},
		{"last", 1, "B", "yo"},
		{"past_end", 2, "Narrator", OutOfBoundsLine},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			speaker, text := d.At(c.pos)
			if speaker != c.speaker || text != c.text {
				t.Fatalf("At(%d) = (%q, %q), want (%q, %q)", c.pos, speaker, text, c.speaker, c.text)
			}
		})
	}
}

func TestDialogueApplyWritesOnlyChanges(t *testing.T) {
	surface := &MemoryText{}
	d := NewDialogue([]Line{{Speaker: "A", Text: "hi"}, {Speaker: "A", Text: "again"}}, surface)
	logger := log.New(&bytes.Buffer{}, "", 0)

	d.Apply(0, logger)
	if surface.Writes != 2 {
		t.Fatalf("first apply should set both fields, writes = %d", surface.Writes)
	}
	d.Apply(1, logger)
	if surface.Writes != 3 {
		t.Fatalf("same speaker should not be rewritten, writes = %d", surface.Writes)
	}
}

func TestDialogueWarnsOnEmptyFields(t *testing.T) {
	logs := &bytes.Buffer{}
	d := NewDialogue([]Line{{}}, &MemoryText{})
	d.Apply(0, log.New(logs, "", 0))

	out := logs.String()
	if !strings.Contains(out, "no speaker text at position 0") || !strings.Contains(out, "no speech text at position 0") {
		t.Fatalf("expected both warnings, got %q", out)
	}
}
