package scenes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

type SceneSpec struct {
	Name        string           `yaml:"name"`
	Start       int              `yaml:"start"`
	History     HistorySpec      `yaml:"history"`
	Lines       []LineSpec       `yaml:"lines"`
	Characters  []CharacterSpec  `yaml:"characters"`
	Backgrounds []BackgroundSpec `yaml:"backgrounds"`
	Music       []string         `yaml:"music"`
}

type HistorySpec struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

type LineSpec struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
}

type CharacterSpec struct {
	Name        string   `yaml:"name"`
	Image       string   `yaml:"image"`
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	Scale       float64  `yaml:"scale"`
	Expressions []string `yaml:"expressions"`
}

type BackgroundSpec struct {
	Name    string               `yaml:"name"`
	Texture string               `yaml:"texture"`
	Color   *YAMLColor           `yaml:"color"`
	Slots   []BackgroundSlotSpec `yaml:"slots"`
}

type BackgroundSlotSpec struct {
	Texture  string     `yaml:"texture"`
	Suppress bool       `yaml:"suppress"`
	Color    *YAMLColor `yaml:"color"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("scenes: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("scenes: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadSceneSpec(name string) (SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return spec, err
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(cleanScenePath(name), ".yaml")
	}
	return spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or a CSS color name.
type YAMLColor struct {
	Value color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Value = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Value = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the color, or def when c is nil.
func (c *YAMLColor) Or(def color.RGBA) color.RGBA {
	if c == nil {
		return def
	}
	return c.Value
}
