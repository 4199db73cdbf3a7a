package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

const rooms = `1
Porch
A creaky porch.
-----
IN 2
DOWN 3
EAST 4/KEY

2
Parlour
A dusty parlour.
-----
OUT 1

3
Well
You fall into the well.
-----
FORCED 0

4
Victory
The garden gate swings open.`

const items = `KEY
A rusty key
2

CANDLE
A stub of candle
1`

func newSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	w, err := world.New(strings.NewReader(rooms), strings.NewReader(items))
	require.NoError(t, err)
	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	s, err := New(w, 1, opts...)
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	s := newSession(t)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, s.Room().ID)
	assert.True(t, s.Room().Explored())
	assert.Equal(t, Playing, s.State())
	assert.False(t, s.GameOver())
	assert.True(t, s.Possessions.IsEmpty())
}

func TestNew_UnknownStartRoom(t *testing.T) {
	w, err := world.New(strings.NewReader(rooms), strings.NewReader(items))
	require.NoError(t, err)
	_, err = New(w, 99)
	assert.ErrorIs(t, err, world.ErrUnknownRoom)
}

func TestNew_SessionIDsAreUnique(t *testing.T) {
	a := newSession(t)
	b := newSession(t)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMove(t *testing.T) {
	s := newSession(t)
	require.True(t, s.CanMove(world.In))

	mv := s.Move(world.In)
	require.Len(t, mv.Rooms, 1)
	assert.Equal(t, 2, s.Room().ID)
	assert.Equal(t, Playing, s.State())
}

func TestMove_MissingRouteLeavesRoomUnchanged(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.CanMove(world.North))

	mv := s.Move(world.North)
	assert.False(t, mv.Moved())
	assert.Equal(t, 1, s.Room().ID)
	assert.Equal(t, Playing, s.State())
}

func TestMove_ConditionalNeedsItem(t *testing.T) {
	s := newSession(t)
	mv := s.Move(world.East)
	assert.False(t, mv.Moved())
	assert.Equal(t, 1, s.Room().ID)

	s.Move(world.In)
	_, err := s.Take("KEY")
	require.NoError(t, err)
	s.Move(world.Out)

	mv = s.Move(world.East)
	assert.True(t, mv.Moved())
	assert.Equal(t, "Victory", s.Room().Name)
	assert.Equal(t, Won, s.State())
	assert.True(t, s.GameOver())
}

func TestMove_ForcedToSentinelLoses(t *testing.T) {
	s := newSession(t)
	mv := s.Move(world.Down)
	assert.True(t, mv.Lost)
	assert.Equal(t, 3, s.Room().ID, "player stays in the room that killed them")
	assert.Equal(t, Lost, s.State())
	assert.True(t, s.GameOver())
}

func TestWithVictoryRoom(t *testing.T) {
	s := newSession(t, WithVictoryRoom("Parlour"))
	s.Move(world.In)
	assert.Equal(t, Won, s.State())
}

func TestTakeAndDrop(t *testing.T) {
	s := newSession(t)

	item, err := s.Take("CANDLE")
	require.NoError(t, err)
	assert.Equal(t, "CANDLE", item.Name)
	assert.True(t, s.Possessions.Has("CANDLE"))
	assert.False(t, s.Room().Contents.Has("CANDLE"))

	s.Move(world.In)
	_, err = s.Drop("CANDLE")
	require.NoError(t, err)
	assert.True(t, s.Room().Contents.Has("CANDLE"))
	assert.False(t, s.Possessions.Has("CANDLE"))
}

func TestTake_NoSuchItem(t *testing.T) {
	s := newSession(t)
	_, err := s.Take("KEY")
	assert.ErrorIs(t, err, ErrNoSuchItem)
	_, err = s.Take("SWORD")
	assert.ErrorIs(t, err, ErrNoSuchItem)
}

func TestDrop_NoSuchItem(t *testing.T) {
	s := newSession(t)
	_, err := s.Drop("CANDLE")
	assert.ErrorIs(t, err, ErrNoSuchItem)
	assert.True(t, s.Room().Contents.Has("CANDLE"))
}

func TestLookAndInventory(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, "A creaky porch.\nCANDLE: A stub of candle", s.Look())
	assert.Equal(t, "Your inventory is empty.", s.Inventory())

	_, err := s.Take("CANDLE")
	require.NoError(t, err)
	assert.Equal(t, "A creaky porch.", s.Look())
	assert.Equal(t, "CANDLE: A stub of candle", s.Inventory())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
	assert.Equal(t, "state(9)", State(9).String())
}

// Property: take/drop sequences never lose or duplicate an item.
func TestPropertyTakeDropConservesItems(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := newSession(t)
		names := []string{"KEY", "CANDLE", "SWORD"}
		dirs := []world.Direction{world.In, world.Out}

		steps := rapid.IntRange(0, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			name := names[rapid.IntRange(0, len(names)-1).Draw(rt, "item")]
			switch rapid.IntRange(0, 2).Draw(rt, "op") {
			case 0:
				_, _ = s.Take(name)
			case 1:
				_, _ = s.Drop(name)
			case 2:
				s.Move(dirs[rapid.IntRange(0, 1).Draw(rt, "dir")])
			}

			porch, _ := s.world.Room(1)
			parlour, _ := s.world.Room(2)
			total := porch.Contents.Len() + parlour.Contents.Len() + s.Possessions.Len()
			if total != 2 {
				rt.Fatalf("expected 2 items in play, got %d", total)
			}
		}
	})
}
