package scene

import "log"

// OutOfBoundsLine is shown when a position has no dialogue entry.
const OutOfBoundsLine = "Error: You've gone outside the bounds of the speech array!"

// Line is one speaker/text pair.
type Line struct {
	Speaker string
	Text    string
}

// Dialogue is the ordered list of lines, one per scene position, bound to the
// surface that displays them.
type Dialogue struct {
	lines   []Line
	surface TextSurface
}

func NewDialogue(lines []Line, surface TextSurface) *Dialogue {
	return &Dialogue{
		lines:   append([]Line(nil), lines...),
		surface: surface,
	}
}

// Len returns the number of scene positions.
func (d *Dialogue) Len() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

// InUse reports whether the dialogue can be displayed at all.
func (d *Dialogue) InUse() bool {
	return d != nil && d.surface != nil && len(d.lines) > 0
}

// At returns the line for pos. Positions outside the track keep the current
// speaker and show OutOfBoundsLine.
func (d *Dialogue) At(pos int) (string, string) {
	if pos >= 0 && pos < len(d.lines) {
		l := d.lines[pos]
		return l.Speaker, l.Text
	}
	speaker := ""
	if d.surface != nil {
		speaker = d.surface.Speaker()
	}
	return speaker, OutOfBoundsLine
}

// Apply pushes the line for pos to the surface, touching only fields that
// changed. Empty fields are reported to logger but still applied.
func (d *Dialogue) Apply(pos int, logger *log.Logger) {
	speaker, text := d.At(pos)

	if speaker == "" {
		logger.Printf("scene: no speaker text at position %d", pos)
	}
	if text == "" {
		logger.Printf("scene: no speech text at position %d", pos)
	}

	if d.surface == nil {
		return
	}
	if d.surface.Speaker() != speaker {
		d.surface.SetSpeaker(speaker)
	}
	if d.surface.Line() != text {
		d.surface.SetLine(text)
	}
}
