package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.png *.wav
var assetsFS embed.FS

const sampleRate = 44100

var (
	imagesMu sync.Mutex
	images   = map[string]*ebiten.Image{}

	audioOnce    sync.Once
	audioContext *audio.Context
)

// LoadImage returns the image for key, decoding it from the embedded assets
// or the filesystem on first use.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("assets: empty image key")
	}

	imagesMu.Lock()
	defer imagesMu.Unlock()

	if img, ok := images[key]; ok {
		return img, nil
	}
	img, err := decodeImage(key)
	if err != nil {
		return nil, err
	}
	images[key] = img
	return img, nil
}

// LoadFile reads an asset, preferring the embedded copy.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if b, err := assetsFS.ReadFile(clean); err == nil {
		return b, nil
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("assets: %s not found", path)
}

// LoadAudioPlayer decodes a wav asset into an infinitely looping player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(strings.ToLower(path), ".wav") {
		return nil, fmt.Errorf("assets: %q is not a wav file", path)
	}

	ctx := audioCtx()
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return ctx.NewPlayer(loop)
}

func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(sampleRate)
		}
	})
	return audioContext
}

func decodeImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
