package scene

import "image/color"

// MemoryImage is a TintSurface that only records what it was told to show.
// It counts writes so callers can see which updates were skipped.
type MemoryImage struct {
	Key    string
	Tint   color.RGBA
	Writes int
}

func (m *MemoryImage) Image() string     { return m.Key }
func (m *MemoryImage) Color() color.RGBA { return m.Tint }

func (m *MemoryImage) SetImage(key string) {
	m.Key = key
	m.Writes++
}

func (m *MemoryImage) SetColor(c color.RGBA) {
	m.Tint = c
	m.Writes++
}

// MemoryText is a TextSurface backed by two strings.
type MemoryText struct {
	SpeakerText string
	LineText    string
	Writes      int
}

func (m *MemoryText) Speaker() string { return m.SpeakerText }
func (m *MemoryText) Line() string    { return m.LineText }

func (m *MemoryText) SetSpeaker(s string) {
	m.SpeakerText = s
	m.Writes++
}

func (m *MemoryText) SetLine(s string) {
	m.LineText = s
	m.Writes++
}

// MemoryAudio is an AudioSurface that records the selected track.
type MemoryAudio struct {
	Key    string
	Writes int
}

func (m *MemoryAudio) Track() string { return m.Key }

func (m *MemoryAudio) SetTrack(key string) {
	m.Key = key
	m.Writes++
}
