package patterns

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

const (
	NameGlider      = "glider"
	NameBlinker     = "blinker"
	NameBlock       = "block"
	NameRandom      = "random"
	NameInteresting = "interesting"
)

// Built-in seeds are confined to the top-left MaxSeedRows x MaxSeedCols of the boundary
const (
	MaxSeedRows = 30
	MaxSeedCols = 60
)

// ErrUnknownPattern is returned by Lookup for names it does not know
var ErrUnknownPattern = errors.New("unknown pattern")

// Names lists the built-in patterns accepted by Lookup
var Names = []string{NameGlider, NameBlinker, NameBlock, NameRandom, NameInteresting}

// Generator produces a seed inside the given area
type Generator func(area model.Boundary, density float64, rng *rand.Rand) model.LiveSet

var generators = map[string]Generator{
	NameGlider: func(area model.Boundary, _ float64, _ *rand.Rand) model.LiveSet {
		return Glider(center(area))
	},
	NameBlinker: func(area model.Boundary, _ float64, _ *rand.Rand) model.LiveSet {
		return Blinker(center(area))
	},
	NameBlock: func(area model.Boundary, _ float64, _ *rand.Rand) model.LiveSet {
		return Block(center(area))
	},
	NameRandom:      Random,
	NameInteresting: Interesting,
}

// Lookup resolves a built-in pattern by name
func Lookup(name string) (Generator, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q (known: %v)", name, Names)
	}
	return gen, nil
}

// SeedBounds returns the top-left part of b, at most MaxSeedRows x MaxSeedCols, that seeds are placed in
func SeedBounds(b model.Boundary) model.Boundary {
	if b.Height() > MaxSeedRows {
		b.Max.Row = b.Min.Row + MaxSeedRows
	}
	if b.Width() > MaxSeedCols {
		b.Max.Col = b.Min.Col + MaxSeedCols
	}
	return b
}

// Glider returns a south-east travelling glider whose bounding box starts at origin
func Glider(origin model.Coordinate) model.LiveSet {
	return shape(origin, []string{
		".#.",
		"..#",
		"###",
	})
}

// Blinker returns a horizontal period-2 oscillator starting at origin
func Blinker(origin model.Coordinate) model.LiveSet {
	return shape(origin, []string{"###"})
}

// Block returns a 2x2 still life with its top-left cell at origin
func Block(origin model.Coordinate) model.LiveSet {
	return shape(origin, []string{
		"##",
		"##",
	})
}

// Random fills the seed area of b with live cells at the given density
func Random(b model.Boundary, density float64, rng *rand.Rand) model.LiveSet {
	area := SeedBounds(b)
	live := model.LiveSet{}
	for row := area.Min.Row; row < area.Max.Row; row++ {
		for col := area.Min.Col; col < area.Max.Col; col++ {
			if rng.Float64() < density {
				live.Add(model.Coordinate{Row: row, Col: col})
			}
		}
	}
	return live
}

// Interesting seeds gliders and blinkers where they fit and sprinkles random life on top
func Interesting(b model.Boundary, density float64, rng *rand.Rand) model.LiveSet {
	var (
		area   = SeedBounds(b)
		live   = model.LiveSet{}
		width  = area.Width()
		height = area.Height()
	)
	at := func(row, col int) model.Coordinate {
		return model.Coordinate{Row: area.Min.Row + int32(row), Col: area.Min.Col + int32(col)}
	}

	if width >= 10 && height >= 10 {
		live = live.Union(Glider(at(5, 5)))
		if width >= 20 && height >= 15 {
			live = live.Union(Glider(at(5, width-8)))
		}

		live = live.Union(Blinker(at(height/4, width/4)))
		if width >= 30 {
			live = live.Union(Blinker(at(3*height/4, 3*width/4)))
		}
	}

	return live.Union(Random(area, density, rng))
}

// Inject returns a copy of live with up to count random cells of the seed area of b brought to life
func Inject(live model.LiveSet, b model.Boundary, count int, rng *rand.Rand) model.LiveSet {
	var (
		area = SeedBounds(b)
		out  = live.Clone()
	)
	for range count {
		out.Add(model.Coordinate{
			Row: area.Min.Row + int32(rng.Intn(area.Height())),
			Col: area.Min.Col + int32(rng.Intn(area.Width())),
		})
	}
	return out
}

// center returns the middle cell of area
func center(area model.Boundary) model.Coordinate {
	return model.Coordinate{
		Row: area.Min.Row + int32(area.Height()/2),
		Col: area.Min.Col + int32(area.Width()/2),
	}
}

// shape converts a picture of '#' cells into a live set anchored at origin
func shape(origin model.Coordinate, rows []string) model.LiveSet {
	live := model.LiveSet{}
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				live.Add(model.Coordinate{Row: origin.Row + int32(r), Col: origin.Col + int32(c)})
			}
		}
	}
	return live
}
