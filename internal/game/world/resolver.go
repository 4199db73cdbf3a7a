package world

// Possessions is the set of items a player holds, as seen by the resolver.
type Possessions interface {
	Has(name string) bool
}

// Movement is the result of resolving one direction command.
type Movement struct {
	// Rooms lists the rooms entered, in traversal order. The last one is the
	// player's new location.
	Rooms []*Room
	// Lost is set when the selected route led to LostRoomID. The player stays
	// in the last room entered (or where they were, if Rooms is empty).
	Lost bool
}

// Moved reports whether the command had any effect.
func (m Movement) Moved() bool {
	return len(m.Rooms) > 0 || m.Lost
}

// Destination returns the last room entered.
//
// Postcondition: Returns (nil, false) if no room was entered.
func (m Movement) Destination() (*Room, bool) {
	if len(m.Rooms) == 0 {
		return nil, false
	}
	return m.Rooms[len(m.Rooms)-1], true
}

// Select picks a candidate: the first conditional candidate whose item is
// held, otherwise the first unconditional one.
//
// Postcondition: Returns (Candidate{}, false) if no candidate is selectable.
func Select(cands []Candidate, held Possessions) (Candidate, bool) {
	for _, c := range cands {
		if c.IsConditional() && held != nil && held.Has(c.Requires) {
			return c, true
		}
	}
	for _, c := range cands {
		if !c.IsConditional() {
			return c, true
		}
	}
	return Candidate{}, false
}

// Resolve computes where moving in dir from current takes the player, given
// the items they hold.
//
// After the first step, FORCED routes are followed from each room entered
// until a room without one is reached, no FORCED candidate is selectable, or a
// candidate targets LostRoomID. A direction the room does not declare, or one
// whose candidates are all unmet conditions, yields an empty Movement.
//
// Precondition: current must belong to w; held may be nil for an empty hand.
// Postcondition: w is not modified.
func (w *World) Resolve(current *Room, dir Direction, held Possessions) Movement {
	var mv Movement
	room := current
	step := dir
	for {
		cand, ok := Select(room.routes[step], held)
		if !ok {
			return mv
		}
		if cand.Target == LostRoomID {
			mv.Lost = true
			return mv
		}
		next, ok := w.rooms[cand.Target]
		if !ok {
			return mv
		}
		mv.Rooms = append(mv.Rooms, next)
		if !next.HasRoute(Forced) {
			return mv
		}
		room = next
		step = Forced
	}
}
