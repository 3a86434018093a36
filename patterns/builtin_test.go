package patterns

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

var testBounds = model.Boundary{Max: model.Coordinate{Row: 30, Col: 60}}

// builtin generates the named pattern inside the seed area of b
func builtin(name string, b model.Boundary, density float64, rng *rand.Rand) (model.LiveSet, error) {
	gen, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return gen(SeedBounds(b), density, rng), nil
}

func TestShapes(t *testing.T) {
	origin := model.Coordinate{Row: 10, Col: 9}
	tests := []struct {
		name string
		got  model.LiveSet
		want []model.Coordinate
	}{
		{
			name: NameBlinker,
			got:  Blinker(origin),
			want: []model.Coordinate{{Row: 10, Col: 9}, {Row: 10, Col: 10}, {Row: 10, Col: 11}},
		},
		{
			name: NameBlock,
			got:  Block(origin),
			want: []model.Coordinate{{Row: 10, Col: 9}, {Row: 10, Col: 10}, {Row: 11, Col: 9}, {Row: 11, Col: 10}},
		},
		{
			name: NameGlider,
			got:  Glider(origin),
			want: []model.Coordinate{
				{Row: 10, Col: 10},
				{Row: 11, Col: 11},
				{Row: 12, Col: 9}, {Row: 12, Col: 10}, {Row: 12, Col: 11},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if want := model.NewLiveSet(tt.want...); !tt.got.Equal(want) {
				t.Fatalf("got %v, want %v", tt.got.Sorted(), want.Sorted())
			}
		})
	}
}

func TestRandomStaysInBounds(t *testing.T) {
	live := Random(testBounds, 0.5, rand.New(rand.NewSource(1)))
	if live.Len() == 0 {
		t.Fatal("Random() produced no cells at density 0.5")
	}
	for c := range live {
		if !testBounds.InBounds(c) {
			t.Fatalf("Random() produced out-of-bounds cell %v", c)
		}
	}

	if empty := Random(testBounds, 0, rand.New(rand.NewSource(1))); empty.Len() != 0 {
		t.Fatalf("Random() at density 0 produced %d cells", empty.Len())
	}
}

func TestRandomDeterministicForSeed(t *testing.T) {
	a := Random(testBounds, 0.3, rand.New(rand.NewSource(42)))
	b := Random(testBounds, 0.3, rand.New(rand.NewSource(42)))
	if !a.Equal(b) {
		t.Fatal("same seed produced different sets")
	}
}

func TestInteresting(t *testing.T) {
	live := Interesting(testBounds, 0, rand.New(rand.NewSource(1)))

	// two gliders and two blinkers
	if live.Len() != 16 {
		t.Fatalf("Interesting() population = %d, want 16", live.Len())
	}
	if !live.Contains(model.Coordinate{Row: 5, Col: 6}) {
		t.Fatal("first glider missing")
	}

	small := model.Boundary{Max: model.Coordinate{Row: 5, Col: 5}}
	if got := Interesting(small, 0, rand.New(rand.NewSource(1))); got.Len() != 0 {
		t.Fatalf("Interesting() on a small board = %v, want empty", got.Sorted())
	}
}

func TestGenerators(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			if _, err := builtin(name, testBounds, 0.1, rng); err != nil {
				t.Fatalf("pattern(%q) error = %v", name, err)
			}
		})
	}

	got, err := builtin(NameBlock, testBounds, 0, rng)
	if err != nil {
		t.Fatalf("pattern(block) error = %v", err)
	}
	if want := Block(model.Coordinate{Row: 15, Col: 30}); !got.Equal(want) {
		t.Fatalf("pattern(block) = %v, want centered %v", got.Sorted(), want.Sorted())
	}

	if _, err = builtin("pulsar", testBounds, 0, rng); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("pattern(pulsar) error = %v, want ErrUnknownPattern", err)
	}
}

func TestSeedBounds(t *testing.T) {
	huge := model.Boundary{
		Min: model.Coordinate{Row: math.MinInt32, Col: math.MinInt32},
		Max: model.Coordinate{Row: math.MaxInt32, Col: math.MaxInt32},
	}
	want := model.Boundary{
		Min: huge.Min,
		Max: model.Coordinate{Row: math.MinInt32 + MaxSeedRows, Col: math.MinInt32 + MaxSeedCols},
	}
	if got := SeedBounds(huge); got != want {
		t.Fatalf("SeedBounds() = %v, want %v", got, want)
	}

	small := model.Boundary{Max: model.Coordinate{Row: 5, Col: 7}}
	if got := SeedBounds(small); got != small {
		t.Fatalf("SeedBounds() changed a small boundary to %v", got)
	}
}

func TestSeedsOnFullInt32Boundary(t *testing.T) {
	huge := model.Boundary{
		Min: model.Coordinate{Row: math.MinInt32, Col: math.MinInt32},
		Max: model.Coordinate{Row: math.MaxInt32, Col: math.MaxInt32},
	}
	area := SeedBounds(huge)

	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			live, err := builtin(name, huge, 0.5, rand.New(rand.NewSource(3)))
			if err != nil {
				t.Fatalf("pattern(%q) error = %v", name, err)
			}
			if live.Len() == 0 || live.Len() > MaxSeedRows*MaxSeedCols {
				t.Fatalf("pattern(%q) population = %d", name, live.Len())
			}
			for c := range live {
				if !area.InBounds(c) {
					t.Fatalf("pattern(%q) cell %v outside seed area %v", name, c, area)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	gen, err := Lookup(NameBlinker)
	if err != nil {
		t.Fatalf("Lookup(blinker) error = %v", err)
	}
	area := model.Boundary{Max: model.Coordinate{Row: 10, Col: 10}}
	if got, want := gen(area, 0, nil), Blinker(model.Coordinate{Row: 5, Col: 5}); !got.Equal(want) {
		t.Fatalf("blinker generator = %v, want %v", got.Sorted(), want.Sorted())
	}

	if _, err = Lookup("pulsar"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Lookup(pulsar) error = %v, want ErrUnknownPattern", err)
	}
}

func TestInject(t *testing.T) {
	var (
		bounds = model.Boundary{Max: model.Coordinate{Row: 500, Col: 500}}
		live   = Block(model.Coordinate{Row: 1, Col: 1})
		before = live.Clone()
	)

	got := Inject(live, bounds, 10, rand.New(rand.NewSource(9)))

	if !live.Equal(before) {
		t.Fatal("Inject mutated its input")
	}
	if got.Len() < live.Len() || got.Len() > live.Len()+10 {
		t.Fatalf("Inject() population = %d, want between %d and %d", got.Len(), live.Len(), live.Len()+10)
	}
	area := SeedBounds(bounds)
	for c := range got {
		if !live.Contains(c) && !area.InBounds(c) {
			t.Fatalf("Inject() added %v outside seed area %v", c, area)
		}
	}

	if zero := Inject(live, bounds, 0, rand.New(rand.NewSource(9))); !zero.Equal(live) {
		t.Fatal("Inject() with count 0 changed the set")
	}
}
