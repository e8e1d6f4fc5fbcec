package common

// Logical screen size; the window is scaled to fit.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// DialogueHeight is the height of the text box anchored to the bottom edge.
const DialogueHeight = 200
