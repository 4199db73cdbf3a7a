package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
)

// Load-time failures. All are fatal: the world is never partially built.
var (
	ErrEmptySource    = errors.New("source contains no records")
	ErrShortRecord    = errors.New("record is missing required lines")
	ErrMalformedRoute = errors.New("malformed route")
	ErrUnknownRoom    = errors.New("unknown room")
	ErrDuplicate      = errors.New("duplicate definition")
	ErrForcedCycle    = errors.New("forced routes form a cycle")
)

const (
	roomMinLines  = 3
	roomRouteLine = 4
	itemMinLines  = 3
	maxLineBytes  = 1 << 20
)

// record is one blank-line separated block of trimmed, non-blank lines.
type record struct {
	// line is the 1-based source line of the record's first line.
	line  int
	lines []string
}

// readRecords splits src into records. A blank or whitespace-only line ends a
// record, as does end of input; runs of blank lines yield no empty records.
func readRecords(src io.Reader) ([]record, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records []record
	var cur record
	lineNo := 0
	flush := func() {
		if len(cur.lines) > 0 {
			records = append(records, cur)
		}
		cur = record{}
	}

	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			flush()
			continue
		}
		if len(cur.lines) == 0 {
			cur.line = lineNo
		}
		cur.lines = append(cur.lines, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	flush()

	if len(records) == 0 {
		return nil, ErrEmptySource
	}
	return records, nil
}

// ParseRooms reads room records from src and returns the validated rooms keyed by ID.
//
// Every room is constructed before any route line is attached, so route
// targets may refer to rooms declared later in the source. Targets are
// checked eagerly: each must name a declared room or LostRoomID.
//
// Postcondition: Returns the rooms or a non-nil error wrapping one of the
// package's load-time errors.
func ParseRooms(src io.Reader) (map[int]*Room, error) {
	rooms, _, err := parseRooms(src)
	return rooms, err
}

func parseRooms(src io.Reader) (map[int]*Room, []int, error) {
	records, err := readRecords(src)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing rooms: %w", err)
	}

	rooms := make(map[int]*Room, len(records))
	order := make([]int, 0, len(records))
	for _, rec := range records {
		if len(rec.lines) < roomMinLines {
			return nil, nil, fmt.Errorf("room record at line %d: got %d lines, need %d: %w",
				rec.line, len(rec.lines), roomMinLines, ErrShortRecord)
		}
		id, err := strconv.Atoi(rec.lines[0])
		if err != nil {
			return nil, nil, fmt.Errorf("room record at line %d: invalid id %q: %w", rec.line, rec.lines[0], err)
		}
		if id <= LostRoomID {
			return nil, nil, fmt.Errorf("room record at line %d: id %d must be positive", rec.line, id)
		}
		if _, exists := rooms[id]; exists {
			return nil, nil, fmt.Errorf("room record at line %d: room %d: %w", rec.line, id, ErrDuplicate)
		}
		rooms[id] = newRoom(id, rec.lines[1], rec.lines[2])
		order = append(order, id)
	}

	for _, rec := range records {
		room := rooms[mustAtoi(rec.lines[0])]
		for i := roomRouteLine; i < len(rec.lines); i++ {
			if err := attachRoute(rooms, room, rec.lines[i]); err != nil {
				return nil, nil, fmt.Errorf("room %d, line %d: %w", room.ID, rec.line+i, err)
			}
		}
	}

	if err := checkForcedCycles(rooms); err != nil {
		return nil, nil, fmt.Errorf("parsing rooms: %w", err)
	}
	return rooms, order, nil
}

// mustAtoi converts a room ID line that parseRooms has already validated.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("world: unvalidated room id %q", s))
	}
	return n
}

// attachRoute parses a "<direction> <transition>" line and adds it to room.
func attachRoute(rooms map[int]*Room, room *Room, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q: want \"<direction> <target>[/<item>]\"", ErrMalformedRoute, line)
	}
	dir := Direction(strings.ToUpper(fields[0]))
	cand, err := parseTransition(fields[1])
	if err != nil {
		return err
	}
	if cand.Target != LostRoomID {
		if _, ok := rooms[cand.Target]; !ok {
			return fmt.Errorf("%s -> %d: %w", dir, cand.Target, ErrUnknownRoom)
		}
	}
	if !room.addCandidate(dir, cand) {
		return fmt.Errorf("%w: %s %s follows an unconditional route", ErrMalformedRoute, dir, cand)
	}
	return nil
}

// parseTransition parses "<int>" or "<int>/<item>", splitting on the first
// slash only; a second slash is malformed.
func parseTransition(token string) (Candidate, error) {
	target, item, conditional := strings.Cut(token, "/")
	if conditional && (item == "" || strings.Contains(item, "/")) {
		return Candidate{}, fmt.Errorf("%w: transition %q", ErrMalformedRoute, token)
	}
	id, err := strconv.Atoi(target)
	if err != nil {
		return Candidate{}, fmt.Errorf("%w: transition %q: target is not an integer", ErrMalformedRoute, token)
	}
	if id < LostRoomID {
		return Candidate{}, fmt.Errorf("%w: transition %q: negative target", ErrMalformedRoute, token)
	}
	return Candidate{Target: id, Requires: item}, nil
}

// checkForcedCycles rejects worlds where following FORCED routes can revisit a
// room. Every FORCED candidate counts as an edge, whatever item it requires.
func checkForcedCycles(rooms map[int]*Room) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[int]int, len(rooms))

	var visit func(id int, path []int) error
	visit = func(id int, path []int) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("%w: %s", ErrForcedCycle, formatPath(append(path, id)))
		case done:
			return nil
		}
		state[id] = visiting
		for _, c := range rooms[id].routes[Forced] {
			if c.Target == LostRoomID {
				continue
			}
			if err := visit(c.Target, append(path, id)); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	ids := make([]int, 0, len(rooms))
	for id := range rooms {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if err := visit(id, nil); err != nil {
			return err
		}
	}
	return nil
}

func formatPath(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " -> ")
}

// ParseItems reads item records from src and places each item in its
// starting room's contents.
//
// Precondition: rooms must be the complete, already-parsed room set.
// Postcondition: Returns the items keyed by name, or a non-nil error if any
// record is malformed, a name repeats, or a location names an unknown room.
func ParseItems(src io.Reader, rooms map[int]*Room) (map[string]*inventory.Item, error) {
	items, err := parseItems(src, rooms)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*inventory.Item, len(items))
	for _, item := range items {
		byName[item.Name] = item
	}
	return byName, nil
}

func parseItems(src io.Reader, rooms map[int]*Room) ([]*inventory.Item, error) {
	records, err := readRecords(src)
	if err != nil {
		return nil, fmt.Errorf("parsing items: %w", err)
	}

	seen := make(map[string]bool, len(records))
	items := make([]*inventory.Item, 0, len(records))
	for _, rec := range records {
		if len(rec.lines) < itemMinLines {
			return nil, fmt.Errorf("item record at line %d: got %d lines, need %d: %w",
				rec.line, len(rec.lines), itemMinLines, ErrShortRecord)
		}
		name := rec.lines[0]
		if seen[name] {
			return nil, fmt.Errorf("item record at line %d: item %q: %w", rec.line, name, ErrDuplicate)
		}
		loc, err := strconv.Atoi(rec.lines[2])
		if err != nil {
			return nil, fmt.Errorf("item record at line %d: invalid location %q: %w", rec.line, rec.lines[2], err)
		}
		room, ok := rooms[loc]
		if !ok {
			return nil, fmt.Errorf("item record at line %d: item %q in room %d: %w", rec.line, name, loc, ErrUnknownRoom)
		}

		item := &inventory.Item{Name: name, Description: rec.lines[1], Location: loc}
		room.Contents.Add(item)
		seen[name] = true
		items = append(items, item)
	}
	return items, nil
}
