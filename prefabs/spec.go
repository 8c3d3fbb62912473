package prefabs

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes the named prefab onto base. Fields the document omits
// keep base's values.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec(filename, data, base)
}

// LoadSpecFile is LoadSpec for an explicit path outside the prefabs tree.
func LoadSpecFile[T any](path string, base T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	return decodeSpec(path, data, base)
}

func decodeSpec[T any](name string, data []byte, base T) (T, error) {
	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

type YAMLColor struct {
	color.Color
}

func RGB(r, g, b uint8) YAMLColor {
	return YAMLColor{Color: color.NRGBA{R: r, G: g, B: b, A: 0xff}}
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
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

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// RGBA returns the color, falling back to opaque black when unset.
func (c YAMLColor) RGBA() (r, g, b, a uint32) {
	if c.Color == nil {
		return color.Black.RGBA()
	}
	return c.Color.RGBA()
}
