package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRooms exercises every route shape: plain, conditional with fallback,
// conditional without fallback, forced chains, and a forced route to the
// lost sentinel.
const testRooms = `1
Hall
A long hall with doors on every side.
-----
NORTH 2
EAST 3/KEY
EAST 4
WEST 5/LAMP
DOWN 6

2
Library
Shelves of dusty books.
-----
SOUTH 1

3
Vault
The vault is full of gold.
-----
WEST 1

4
Locked door
The door will not open. You step back.
-----
FORCED 1

5
Chute
You slide down a chute.
-----
FORCED 7

6
Trapdoor
The floor gives way beneath you.
-----
FORCED 0

7
Cellar
A dank cellar.
-----
UP 1
FORCED 8/ROPE

8
Victory
You climbed out into the sunlight.`

const testItems = `KEY
A small iron key
2

LAMP
A brass lamp
1`

func testWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(strings.NewReader(testRooms), strings.NewReader(testItems))
	require.NoError(t, err)
	return w
}

func room(t *testing.T, w *World, id int) *Room {
	t.Helper()
	r, ok := w.Room(id)
	require.True(t, ok, "room %d", id)
	return r
}

// held is a Possessions backed by a plain set.
type held map[string]bool

func (h held) Has(name string) bool { return h[name] }
