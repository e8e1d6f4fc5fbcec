package main

import (
	"log"

	"golang.design/x/clipboard"
)

// Clipboard copies dialogue to the system clipboard. It stays disabled when
// the platform clipboard cannot be opened.
type Clipboard struct {
	enabled bool
}

func NewClipboard(logger *log.Logger) *Clipboard {
	if err := clipboard.Init(); err != nil {
		logger.Printf("clipboard unavailable: %v", err)
		return &Clipboard{}
	}
	return &Clipboard{enabled: true}
}

func (c *Clipboard) CopyLine(speaker, line string) {
	if c == nil || !c.enabled {
		return
	}
	text := line
	if speaker != "" {
		text = speaker + ": " + line
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
}
