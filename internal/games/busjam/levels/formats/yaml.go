// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/busjam/internal/games/busjam/core"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Size       YAMLSize        `yaml:"size"`
	CellSize   float64         `yaml:"cell_size,omitempty"`
	Anchor     *YAMLVec3       `yaml:"anchor,omitempty"`
	Duration   string          `yaml:"duration,omitempty"`
	Blocks     []YAMLBlock     `yaml:"blocks,omitempty"`
	Objects    []YAMLObject    `yaml:"objects,omitempty"`
	Buses      []YAMLBus       `yaml:"buses"`
	Passengers []YAMLPassenger `yaml:"passengers,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLCell is a grid cell or a cell offset.
type YAMLCell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// YAMLVec3 is a world-space position.
type YAMLVec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// YAMLBlock is a static obstacle.
type YAMLBlock struct {
	X        int     `yaml:"x"`
	Y        int     `yaml:"y"`
	ID       int     `yaml:"id,omitempty"`
	Rotation float64 `yaml:"rotation,omitempty"`
}

// YAMLObject is a world object placement.
type YAMLObject struct {
	Type     string   `yaml:"type"`
	ID       int      `yaml:"id,omitempty"`
	Position YAMLVec3 `yaml:"position"`
	Rotation float64  `yaml:"rotation,omitempty"`
}

// YAMLBus is a bus in either length form or offset form.
type YAMLBus struct {
	Head     YAMLCell   `yaml:"head"`
	Color    string     `yaml:"color"`
	Length   int        `yaml:"length,omitempty"`
	Tail     []YAMLCell `yaml:"tail,omitempty"`
	Rotation float64    `yaml:"rotation,omitempty"`
	Seats    int        `yaml:"seats,omitempty"`
}

// YAMLPassenger is a passenger queue.
type YAMLPassenger struct {
	Position YAMLVec3    `yaml:"position"`
	Rotation float64     `yaml:"rotation,omitempty"`
	Groups   []YAMLGroup `yaml:"groups"`
}

// YAMLGroup is a run of same-colored passengers.
type YAMLGroup struct {
	Color string `yaml:"color"`
	Count int    `yaml:"count"`
}

func (v YAMLVec3) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (core.LevelData, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return core.LevelData{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := core.LevelData{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		CellSize: yl.CellSize,
	}
	if level.Width == 0 && level.Height == 0 {
		level.Width, level.Height = core.DefaultWidth, core.DefaultHeight
	}
	if level.CellSize == 0 {
		level.CellSize = core.DefaultCellSize
	}
	if yl.Anchor != nil {
		level.Anchor = yl.Anchor.vec()
	}
	if yl.Duration != "" {
		d, err := time.ParseDuration(yl.Duration)
		if err != nil {
			return core.LevelData{}, fmt.Errorf("duration %q: %w", yl.Duration, err)
		}
		level.Duration = d
	}

	for _, b := range yl.Blocks {
		level.Blocks = append(level.Blocks, core.BlockData{
			Cell:      core.C(b.X, b.Y),
			BlockID:   b.ID,
			RotationY: b.Rotation,
		})
	}

	for i, o := range yl.Objects {
		t, ok := core.ParseObjectType(o.Type)
		if !ok {
			return core.LevelData{}, fmt.Errorf("object %d: unknown type %q", i, o.Type)
		}
		level.WorldObjects = append(level.WorldObjects, core.WorldObject{
			Type:      t,
			ObjectID:  o.ID,
			Position:  o.Position.vec(),
			RotationY: o.Rotation,
		})
	}

	for i, b := range yl.Buses {
		color, ok := core.ParseColor(b.Color)
		if !ok {
			return core.LevelData{}, fmt.Errorf("bus %d: unknown color %q", i+1, b.Color)
		}
		def := core.BusDef{
			Head:      core.C(b.Head.X, b.Head.Y),
			Color:     color,
			Length:    b.Length,
			RotationY: b.Rotation,
			Seats:     b.Seats,
		}
		if len(b.Tail) > 0 {
			for _, off := range b.Tail {
				def.Tail = append(def.Tail, core.C(off.X, off.Y))
			}
			def.Length = len(def.Tail) + 1
		} else if def.Length == 0 {
			def.Length = 1
		}
		level.Buses = append(level.Buses, def)
	}

	for i, p := range yl.Passengers {
		spawn := core.PassengerSpawn{
			Position:  p.Position.vec(),
			RotationY: p.Rotation,
		}
		for _, g := range p.Groups {
			color, ok := core.ParseColor(g.Color)
			if !ok {
				return core.LevelData{}, fmt.Errorf("passengers %d: unknown color %q", i+1, g.Color)
			}
			if g.Count < 0 {
				return core.LevelData{}, fmt.Errorf("passengers %d: negative count %d", i+1, g.Count)
			}
			spawn.Groups = append(spawn.Groups, core.PassengerGroup{Color: color, Count: g.Count})
		}
		level.PassengerSpawns = append(level.PassengerSpawns, spawn)
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
