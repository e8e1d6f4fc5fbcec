package scene

import "image/color"

// ImageSurface displays a single image identified by an asset key. An empty
// key means nothing is shown.
type ImageSurface interface {
	Image() string
	SetImage(key string)
}

// TintSurface is an ImageSurface that also carries a tint color.
type TintSurface interface {
	ImageSurface
	Color() color.RGBA
	SetColor(c color.RGBA)
}

// TextSurface is where the speaker name and the spoken line are drawn.
type TextSurface interface {
	Speaker() string
	SetSpeaker(s string)
	Line() string
	SetLine(s string)
}

// AudioSurface plays a looping track identified by an asset key. An empty key
// stops playback.
type AudioSurface interface {
	Track() string
	SetTrack(key string)
}
