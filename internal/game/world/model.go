// Package world provides the game world model: rooms, their routes, and the
// items they start out holding. It parses the WorldText room and item formats
// and resolves player movement through the resulting graph.
package world

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
)

// LostRoomID is the reserved route target that ends the game in defeat.
// No room may be declared with this ID.
const LostRoomID = 0

// Direction is the uppercase token naming a route out of a room, e.g. a
// compass point, IN, OUT, or the reserved Forced.
type Direction string

// Forced is the direction taken automatically on entering a room.
const Forced Direction = "FORCED"

// Common direction tokens used by the bundled data sets.
const (
	North Direction = "NORTH"
	South Direction = "SOUTH"
	East  Direction = "EAST"
	West  Direction = "WEST"
	Up    Direction = "UP"
	Down  Direction = "DOWN"
	In    Direction = "IN"
	Out   Direction = "OUT"
)

// Candidate is one possible transition for a direction.
type Candidate struct {
	// Target is the ID of the destination room, or LostRoomID.
	Target int
	// Requires names the item the player must hold for this candidate to be
	// selectable. Empty means unconditional.
	Requires string
}

// IsConditional reports whether the candidate requires an item.
func (c Candidate) IsConditional() bool {
	return c.Requires != ""
}

// String returns the candidate in route-line form: "7" or "7/KEYS".
func (c Candidate) String() string {
	if c.IsConditional() {
		return strconv.Itoa(c.Target) + "/" + c.Requires
	}
	return strconv.Itoa(c.Target)
}

// Room is a location in the game world. Rooms are created only by the parser.
type Room struct {
	// ID uniquely identifies the room; never LostRoomID.
	ID int
	// Name is the short display name shown on revisits.
	Name string
	// Description is the long-form text shown on the first visit and by LOOK.
	Description string
	// Contents holds the items lying in the room.
	Contents *inventory.Ledger

	routes     map[Direction][]Candidate
	directions []Direction
	explored   bool
}

func newRoom(id int, name, description string) *Room {
	return &Room{
		ID:          id,
		Name:        name,
		Description: description,
		Contents:    inventory.NewLedger(),
		routes:      make(map[Direction][]Candidate),
	}
}

// addCandidate appends c to the candidate list for dir.
//
// Postcondition: returns false without modifying the room if the list already
// ends in an unconditional candidate, which must stay the last entry.
func (r *Room) addCandidate(dir Direction, c Candidate) bool {
	existing, ok := r.routes[dir]
	if !ok {
		r.directions = append(r.directions, dir)
	}
	if n := len(existing); n > 0 && !existing[n-1].IsConditional() {
		return false
	}
	r.routes[dir] = append(existing, c)
	return true
}

// HasRoute reports whether the room declares any route in the given direction.
func (r *Room) HasRoute(dir Direction) bool {
	_, ok := r.routes[dir]
	return ok
}

// Candidates returns the candidate list for dir in declaration order.
//
// Postcondition: returned slice is a copy; nil if the direction is not declared.
func (r *Room) Candidates(dir Direction) []Candidate {
	cands, ok := r.routes[dir]
	if !ok {
		return nil
	}
	out := make([]Candidate, len(cands))
	copy(out, cands)
	return out
}

// Directions returns the declared directions in declaration order.
func (r *Room) Directions() []Direction {
	out := make([]Direction, len(r.directions))
	copy(out, r.directions)
	return out
}

// Explored reports whether the room has been rendered in full.
func (r *Room) Explored() bool {
	return r.explored
}

// MarkExplored makes later renders name-only.
func (r *Room) MarkExplored() {
	r.explored = true
}

// Show returns the description followed by the room contents, if any.
func (r *Room) Show() string {
	if r.Contents.IsEmpty() {
		return r.Description
	}
	var b strings.Builder
	b.WriteString(r.Description)
	b.WriteString("\n")
	b.WriteString(r.Contents.String())
	return b.String()
}

// Render returns Show on the first call and only the name afterwards.
//
// Postcondition: the room is explored.
func (r *Room) Render() string {
	if r.explored {
		return r.Name
	}
	r.explored = true
	return r.Show()
}
