package snake

import (
	"slices"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/snakebite/internal/core"
)

func TestAdvanceStaysOnBoard(t *testing.T) {
	const size = 20
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			for _, h := range Headings {
				body := []core.Point{{X: x, Y: y}}
				next := Advance(body, h, size)
				if !next.In(size) || IsWallCollision(next, size) {
					t.Fatalf("Advance(%v, %v) = %v left the board", body[0], h, next)
				}
			}
		}
	}
}

func TestAdvanceWraps(t *testing.T) {
	tests := []struct {
		name string
		head core.Point
		h    Heading
		want core.Point
	}{
		{"right edge", core.Point{X: 19, Y: 4}, Right, core.Point{X: 0, Y: 4}},
		{"left edge", core.Point{X: 0, Y: 4}, Left, core.Point{X: 19, Y: 4}},
		{"top edge", core.Point{X: 7, Y: 0}, Up, core.Point{X: 7, Y: 19}},
		{"bottom edge", core.Point{X: 7, Y: 19}, Down, core.Point{X: 7, Y: 0}},
		{"interior", core.Point{X: 3, Y: 5}, Right, core.Point{X: 4, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance([]core.Point{tt.head}, tt.h, 20)
			if got != tt.want {
				t.Errorf("Advance = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestAdvanceBoundedLeavesBoard(t *testing.T) {
	got := AdvanceBounded([]core.Point{{X: 19, Y: 4}}, Right)
	if got != (core.Point{X: 20, Y: 4}) {
		t.Fatalf("AdvanceBounded = %v, expected (20,4)", got)
	}
	if !IsWallCollision(got, 20) {
		t.Error("expected a wall collision past the right edge")
	}
}

func TestSlither(t *testing.T) {
	body := []core.Point{{X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}}
	orig := slices.Clone(body)
	head := core.Point{X: 4, Y: 5}

	moved := Slither(body, head, false)
	want := []core.Point{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}}
	if !slices.Equal(moved, want) {
		t.Errorf("Slither(no grow) = %v, expected %v", moved, want)
	}

	grown := Slither(body, head, true)
	if len(grown) != len(body)+1 || grown[0] != head || grown[len(grown)-1] != body[len(body)-1] {
		t.Errorf("Slither(grow) = %v", grown)
	}

	if !slices.Equal(body, orig) {
		t.Errorf("Slither modified its input: %v", body)
	}
}

func TestCollisionPredicates(t *testing.T) {
	body := []core.Point{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"self hits middle", IsSelfCollision(core.Point{X: 3, Y: 5}, body), true},
		{"self hits tail", IsSelfCollision(core.Point{X: 2, Y: 5}, body), true},
		{"self miss", IsSelfCollision(core.Point{X: 5, Y: 5}, body), false},
		{"wall negative", IsWallCollision(core.Point{X: -1, Y: 0}, 20), true},
		{"wall far edge", IsWallCollision(core.Point{X: 0, Y: 20}, 20), true},
		{"wall inside", IsWallCollision(core.Point{X: 19, Y: 19}, 20), false},
		{"bite on tail", EnemyBitesPlayer([]core.Point{{X: 2, Y: 5}, {X: 2, Y: 4}}, body), true},
		{"enemy body on player", EnemyBitesPlayer([]core.Point{{X: 9, Y: 9}, {X: 3, Y: 5}}, body), false},
		{"empty enemy", EnemyBitesPlayer(nil, body), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, expected %v", tt.got, tt.want)
			}
		})
	}
}

func TestOpposite(t *testing.T) {
	pairs := map[Heading]Heading{Right: Left, Left: Right, Up: Down, Down: Up}
	for a, b := range pairs {
		if !Opposite(a, b) {
			t.Errorf("Opposite(%v, %v) = false", a, b)
		}
		if Opposite(a, a) {
			t.Errorf("Opposite(%v, %v) = true", a, a)
		}
	}
	if Opposite(Right, Up) {
		t.Error("perpendicular headings are not opposite")
	}
}

func TestEnemySteerNeverReverses(t *testing.T) {
	c := NewEnemyController(rand.New(rand.NewSource(7)), 1)

	counts := make(map[Heading]int)
	const n = 30000
	for i := 0; i < n; i++ {
		h := c.Steer(Down)
		if Opposite(h, Down) {
			t.Fatalf("enemy reversed from %v to %v", Down, h)
		}
		counts[h]++
	}

	if len(counts) != 3 {
		t.Fatalf("expected three possible headings, got %v", counts)
	}
	for h, got := range counts {
		if got < n/3-n/20 || got > n/3+n/20 {
			t.Errorf("heading %v chosen %d times, expected about %d", h, got, n/3)
		}
	}
}

func TestEnemySteerKeepsHeadingWithoutTurns(t *testing.T) {
	c := NewEnemyController(rand.New(rand.NewSource(7)), 0)
	for i := 0; i < 1000; i++ {
		if h := c.Steer(Left); h != Left {
			t.Fatalf("turn probability 0 changed heading to %v", h)
		}
	}
}

func TestEnemyTurnRate(t *testing.T) {
	c := NewEnemyController(rand.New(rand.NewSource(11)), 0.2)

	const n = 30000
	changed := 0
	for i := 0; i < n; i++ {
		if c.Steer(Up) != Up {
			changed++
		}
	}
	// A turn keeps the current heading a third of the time.
	want := n * 2 / 15
	if changed < want-n/50 || changed > want+n/50 {
		t.Errorf("heading changed %d times, expected about %d", changed, want)
	}
}

func TestSpawnFoodAvoidsPlayer(t *testing.T) {
	const size = 4
	var body []core.Point
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x == 2 && y == 1 {
				continue
			}
			body = append(body, core.Point{X: x, Y: y})
		}
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		if got := SpawnFood(rng, body, size); got != (core.Point{X: 2, Y: 1}) {
			t.Fatalf("SpawnFood = %v, expected the only free cell (2,1)", got)
		}
	}
}

func TestSpawnFoodInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	body := []core.Point{{X: 3, Y: 17}, {X: 2, Y: 17}, {X: 1, Y: 17}}
	for i := 0; i < 500; i++ {
		p := SpawnFood(rng, body, 20)
		if !p.In(20) || IsSelfCollision(p, body) {
			t.Fatalf("SpawnFood = %v is off the board or on the player", p)
		}
	}
}
