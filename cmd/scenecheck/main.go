package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/milk9111/scenestep/scene"
	"github.com/milk9111/scenestep/scenes"
)

// binder records every surface so the resolved state can be printed after
// each step.
type binder struct {
	text        *scene.MemoryText
	characters  []namedImage
	backgrounds []namedImage
	music       *scene.MemoryAudio
}

type namedImage struct {
	name string
	img  *scene.MemoryImage
}

func (b *binder) Text() scene.TextSurface { return b.text }

func (b *binder) Character(spec scenes.CharacterSpec) scene.ImageSurface {
	img := &scene.MemoryImage{Key: spec.Image}
	b.characters = append(b.characters, namedImage{spec.Name, img})
	return img
}

func (b *binder) Background(spec scenes.BackgroundSpec) scene.TintSurface {
	img := &scene.MemoryImage{Key: spec.Texture, Tint: spec.Color.Or(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})}
	b.backgrounds = append(b.backgrounds, namedImage{spec.Name, img})
	return img
}

func (b *binder) Music() scene.AudioSurface { return b.music }

func main() {
	sceneName := flag.String("scene", "intro", "scene script to check")
	flag.Parse()

	spec, err := scenes.LoadSceneSpec(*sceneName)
	if err != nil {
		log.Fatal(err)
	}

	dir, err := os.MkdirTemp("", "scenecheck")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	logger := log.New(os.Stderr, "warning: ", 0)
	b := &binder{text: &scene.MemoryText{}, music: &scene.MemoryAudio{}}
	m, err := spec.Open(b, dir, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Teardown()

	rows, err := walk(m, b)
	if err != nil {
		log.Fatal(err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "pos\tspeaker\tline\tcharacters\tbackgrounds\tmusic")
	for _, r := range rows {
		fmt.Fprintln(tw, r)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}

// walk records one tab-separated row per position from the manager's current
// position to the last one.
func walk(m *scene.Manager, b *binder) ([]string, error) {
	var rows []string
	for {
		pos := m.Position()
		rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s",
			pos, b.text.SpeakerText, b.text.LineText,
			describe(b.characters, false), describe(b.backgrounds, true), b.music.Key))
		if err := m.Advance(); err != nil {
			return rows, err
		}
		if m.Position() == pos {
			return rows, nil
		}
	}
}

func describe(images []namedImage, withTint bool) string {
	parts := make([]string, 0, len(images))
	for _, ni := range images {
		key := ni.img.Key
		if key == "" {
			key = "-"
		}
		if withTint {
			c := ni.img.Tint
			parts = append(parts, fmt.Sprintf("%s=%s#%02x%02x%02x%02x", ni.name, key, c.R, c.G, c.B, c.A))
			continue
		}
		parts = append(parts, ni.name+"="+key)
	}
	return strings.Join(parts, " ")
}
