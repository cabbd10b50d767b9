package frogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// testConfig returns a small board with fixed row parameters:
//
//	row 0  bridge     targets at x = 50, 225, 400, 575, 750
//	row 1  log left   50px/s, floaters 150 wide at x = 0, 250, 500, 750, 1000
//	row 2  sidewalk
//	row 3  lane       100px/s leftward, cars 100 wide at x = 0, 250, 450, 700, 900, 1150
//	row 4  sidewalk   frog starts at (410, 210)
func testConfig() config.FroggerConfig {
	cfg := config.DefaultFroggerConfig()
	cfg.Board.Layout = []string{"bridge", "log left", "sidewalk", "lane", "sidewalk"}
	cfg.Rivers = config.RiverConfig{
		Speed:          config.FloatRange{Min: 1, Max: 1},
		FloatLength:    config.IntRange{Min: 3, Max: 3},
		Spacing:        config.IntRange{Min: 6, Max: 6},
		PatternSpacing: config.IntRange{Min: 5, Max: 5},
		PatternCount:   config.IntRange{Min: 1, Max: 1},
	}
	cfg.Lanes = config.LaneConfig{
		Speed:          config.IntRange{Min: 2, Max: 2},
		Spacing:        config.IntRange{Min: 5, Max: 5},
		PatternSpacing: config.IntRange{Min: 4, Max: 4},
		PatternCount:   config.IntRange{Min: 2, Max: 2},
	}
	return cfg
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(testConfig(), 1)
	require.NoError(t, err)
	return w
}

// placeFrog puts the live frog at rest at (x, y).
func placeFrog(t *testing.T, w *World, x, y float64) *Frog {
	t.Helper()
	f := w.Frog()
	require.NotNil(t, f)
	f.Box.Pos = core.V(x, y)
	f.Target = f.Box.Pos
	return f
}

func deaths(events []Event) []DeathCause {
	var out []DeathCause
	for _, ev := range events {
		if ev.Kind == EventDeath {
			out = append(out, ev.Cause)
		}
	}
	return out
}

func TestNewWorldBoard(t *testing.T) {
	w := newTestWorld(t)

	assert.Equal(t, Board{Width: 850, Height: 250, Tile: 50}, w.Board())
	assert.Equal(t, core.V(410, 210), w.Start())
	assert.Equal(t, 3, w.Lives())
	assert.Equal(t, StatusPlaying, w.Status())

	require.Len(t, w.Rivers(), 1)
	river := w.Rivers()[0]
	assert.Equal(t, -1, river.Direction)
	assert.Equal(t, core.V(-50, 0), river.Velocity)
	assert.Equal(t, 150.0, river.FloatLength)
	require.Len(t, river.Floaters, 5)
	assert.Equal(t, 250.0, river.Floaters[1].Box.Pos.X)

	require.Len(t, w.Lanes(), 1)
	lane := w.Lanes()[0]
	assert.Equal(t, -1, lane.Direction)
	assert.Equal(t, 100.0, lane.Speed)
	require.Len(t, lane.Cars, 6)
	assert.Equal(t, core.Box(0, 150, 100, 49), lane.Cars[0].Box)

	require.NotNil(t, w.Bridge())
	require.Len(t, w.Bridge().Targets, TargetCount)
	for i, target := range w.Bridge().Targets {
		assert.Equal(t, 50+float64(i)*175, target.Box.Pos.X)
	}
}

func TestDefaultBoardStart(t *testing.T) {
	w, err := NewWorld(config.DefaultFroggerConfig(), 1)
	require.NoError(t, err)

	assert.Equal(t, core.V(410, 560), w.Start())
	assert.Len(t, w.Lanes(), 4)
	assert.Len(t, w.Rivers(), 5)

	// Lanes alternate direction starting leftward
	for i, lane := range w.Lanes() {
		want := -1
		if i%2 == 1 {
			want = 1
		}
		assert.Equal(t, want, lane.Direction, "lane %d", i)
	}
}

func TestColliderOrder(t *testing.T) {
	w := newTestWorld(t)
	cs := w.Colliders()

	require.Len(t, cs, 5+1+5+1+6)
	for i := 0; i < 5; i++ {
		assert.IsType(t, &Target{}, cs[i])
	}
	assert.IsType(t, &Bridge{}, cs[5])
	for i := 6; i < 11; i++ {
		assert.IsType(t, &Floater{}, cs[i])
	}
	assert.IsType(t, &River{}, cs[11])
	for i := 12; i < len(cs); i++ {
		assert.IsType(t, &Car{}, cs[i])
	}
}

func TestNewWorldRejectsBadLayout(t *testing.T) {
	cfg := testConfig()
	cfg.Board.Layout = []string{"bridge", "lava"}

	_, err := NewWorld(cfg, 1)
	assert.ErrorIs(t, err, ErrUnknownRow)
}

func TestOccupiedTargetKills(t *testing.T) {
	w := newTestWorld(t)
	target := w.Bridge().Targets[0]
	target.Occupied = true

	placeFrog(t, w, 60, 10)
	w.Step(0)

	assert.Equal(t, 2, w.Lives())
	assert.Equal(t, 0, w.Finished())
	assert.True(t, target.Occupied)
	assert.Equal(t, []DeathCause{DeathReLanding}, deaths(w.DrainEvents()))

	require.NotNil(t, w.Frog())
	assert.Equal(t, w.Start(), w.Frog().Box.Pos)
}

func TestFillingAllTargetsWins(t *testing.T) {
	w := newTestWorld(t)

	for i, target := range w.Bridge().Targets {
		require.Equal(t, StatusPlaying, w.Status())
		placeFrog(t, w, target.Box.Pos.X+10, 10)
		w.Step(0)

		assert.True(t, target.Occupied, "target %d", i)
		assert.Equal(t, i+1, w.Finished())
	}

	assert.Equal(t, StatusWon, w.Status())
	assert.Nil(t, w.Frog())
	assert.Equal(t, 3, w.Lives())
	assert.Equal(t, TargetCount, w.Bridge().Occupied())

	events := w.DrainEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, EventWin, events[len(events)-1].Kind)

	// Inert after the end
	assert.False(t, w.Hop(core.ActionUp))
	w.Step(0.1)
	assert.Nil(t, w.Frog())
}

func TestTargetPartialOverlapFallsThroughToBridge(t *testing.T) {
	w := newTestWorld(t)

	placeFrog(t, w, 35, 10)
	w.Step(0)

	assert.Equal(t, 2, w.Lives())
	assert.False(t, w.Bridge().Targets[0].Occupied)
	assert.Equal(t, []DeathCause{DeathSquash}, deaths(w.DrainEvents()))
	require.Len(t, w.Corpses(), 1)
}

func TestTargetIgnoresFrogMidHop(t *testing.T) {
	w := newTestWorld(t)

	f := placeFrog(t, w, 60, 10)
	f.Target = core.V(60, 60)
	w.Step(0)

	assert.Equal(t, 3, w.Lives())
	assert.Same(t, f, w.Frog())
	assert.False(t, w.Bridge().Targets[0].Occupied)
}

func TestBridgeSquashesFrog(t *testing.T) {
	w := newTestWorld(t)

	placeFrog(t, w, 10, 10)
	w.Step(0)

	assert.Equal(t, 2, w.Lives())
	assert.Equal(t, []DeathCause{DeathSquash}, deaths(w.DrainEvents()))
}

func TestFloaterCarriesFrog(t *testing.T) {
	w := newTestWorld(t)

	f := placeFrog(t, w, 10, 60)
	w.Step(0)

	ride, ok := f.Riding()
	require.True(t, ok)
	assert.Equal(t, Ride{River: 0, Floater: 0}, ride)

	w.Step(0.1)
	assert.Same(t, f, w.Frog())
	assert.InDelta(t, 5.0, f.Box.Pos.X, eps)
	assert.True(t, f.AtRest())
	assert.Equal(t, 3, w.Lives())
}

func TestOffBoardOnLeftwardFloater(t *testing.T) {
	w := newTestWorld(t)

	f := placeFrog(t, w, 2, 60)
	f.RideOn(Ride{River: 0, Floater: 0})

	// Partly past the edge is still alive
	w.Step(0.2)
	require.Same(t, f, w.Frog())
	assert.InDelta(t, -8.0, f.Box.Pos.X, eps)
	_, riding := f.Riding()
	assert.True(t, riding)

	// Right edge carried past x=0
	w.Step(0.9)
	assert.Equal(t, 2, w.Lives())
	assert.Equal(t, []DeathCause{DeathOffBoard}, deaths(w.DrainEvents()))
	require.NotNil(t, w.Frog())
	assert.NotSame(t, f, w.Frog())
	assert.Equal(t, w.Start(), w.Frog().Box.Pos)
	assert.Empty(t, w.Corpses())
}

func TestOpenWaterSplashes(t *testing.T) {
	w := newTestWorld(t)

	placeFrog(t, w, 185, 60)
	w.Step(0)

	assert.Equal(t, 2, w.Lives())
	assert.Equal(t, []DeathCause{DeathSplash}, deaths(w.DrainEvents()))
	assert.Empty(t, w.Corpses())
}

func TestWaterIgnoresFrogMidHop(t *testing.T) {
	w := newTestWorld(t)

	f := placeFrog(t, w, 185, 60)
	f.Target = core.V(185, 110)
	w.Step(0)

	assert.Equal(t, 3, w.Lives())
	assert.Same(t, f, w.Frog())
}

func TestCarSquashesFrog(t *testing.T) {
	w := newTestWorld(t)

	f := placeFrog(t, w, 20, 160)
	w.Step(0)

	assert.Equal(t, 2, w.Lives())
	assert.Equal(t, []DeathCause{DeathSquash}, deaths(w.DrainEvents()))

	require.Len(t, w.Corpses(), 1)
	corpse := w.Corpses()[0]
	assert.Same(t, f, corpse)
	assert.True(t, corpse.Squashed)
	assert.Equal(t, core.V(10, 150), corpse.Box.Pos)
	assert.True(t, corpse.AtRest())
}

func TestCarSquashesFrogMidHop(t *testing.T) {
	w := newTestWorld(t)

	f := placeFrog(t, w, 20, 160)
	f.Target = core.V(20, 110)
	f.Angle = 30
	f.TargetAngle = 0
	w.Step(0)

	require.Len(t, w.Corpses(), 1)
	assert.Equal(t, core.V(10, 150), f.Box.Pos)
	assert.Equal(t, core.V(10, 125), f.Target)
	assert.Equal(t, f.Angle, f.TargetAngle)
}

func TestCorpseFades(t *testing.T) {
	w := newTestWorld(t)

	placeFrog(t, w, 20, 160)
	w.Step(0)
	require.Len(t, w.Corpses(), 1)

	w.Step(0.6)
	assert.Len(t, w.Corpses(), 1)
	w.Step(0.6)
	assert.Empty(t, w.Corpses())
}

func TestThreeDeathsEndTheGame(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < 3; i++ {
		require.NotNil(t, w.Frog(), "death %d", i)
		placeFrog(t, w, 185, 60)
		w.Step(0)
	}

	assert.Equal(t, 0, w.Lives())
	assert.Equal(t, StatusGameOver, w.Status())
	assert.Nil(t, w.Frog())

	events := w.DrainEvents()
	assert.Equal(t, []DeathCause{DeathSplash, DeathSplash, DeathSplash}, deaths(events))
	assert.Equal(t, EventGameOver, events[len(events)-1].Kind)

	// No respawn afterwards
	w.Step(0.5)
	assert.Nil(t, w.Frog())
	assert.False(t, w.Hop(core.ActionUp))
	assert.Empty(t, w.DrainEvents())
}

func TestHopAlongSidewalk(t *testing.T) {
	w := newTestWorld(t)
	f := placeFrog(t, w, 410, 110)

	require.True(t, w.Hop(core.ActionLeft))
	assert.False(t, w.Hop(core.ActionLeft), "second hop while mid-air")

	for i := 0; i < 60 && !f.AtRest(); i++ {
		w.Step(1.0 / 60)
	}

	require.True(t, f.AtRest())
	assert.Equal(t, core.V(360, 110), f.Box.Pos)
	assert.Equal(t, 270.0, f.Angle)
	assert.Same(t, f, w.Frog())
	assert.Equal(t, 3, w.Lives())
}

func TestSpritesOrder(t *testing.T) {
	w := newTestWorld(t)
	placeFrog(t, w, 20, 160)
	w.Step(0)

	sprites := w.Sprites()
	require.NotEmpty(t, sprites)

	assert.Equal(t, SpriteBridge, sprites[0].Kind)
	last := sprites[len(sprites)-1]
	assert.Equal(t, SpriteFrog, last.Kind)
	assert.Equal(t, SpriteSquashedFrog, sprites[len(sprites)-2].Kind)
}
