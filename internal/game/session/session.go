// Package session holds the state of one game in progress: where the player
// is, what they carry, and whether the game has ended.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// ErrNoSuchItem is returned by Take and Drop when the item is not where it
// would have to be.
var ErrNoSuchItem = errors.New("no such item")

// DefaultVictoryRoom is the room name that wins the game unless overridden.
const DefaultVictoryRoom = "Victory"

// State is the progress of a game.
type State int

// Game states.
const (
	Playing State = iota
	Won
	Lost
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is a single player's game. It is not safe for concurrent use.
type Session struct {
	// ID identifies the session in logs.
	ID string
	// Possessions holds the items the player carries.
	Possessions *inventory.Ledger

	world       *world.World
	current     *world.Room
	state       State
	victoryRoom string
	logger      *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithVictoryRoom sets the room name that wins the game.
func WithVictoryRoom(name string) Option {
	return func(s *Session) { s.victoryRoom = name }
}

// New starts a game in the room with the given ID. The start room counts as
// explored, so its full description is expected to be shown by the caller.
//
// Precondition: w must be non-nil.
// Postcondition: Returns a Playing session, or an error if the start room does not exist.
func New(w *world.World, startRoom int, opts ...Option) (*Session, error) {
	start, ok := w.Room(startRoom)
	if !ok {
		return nil, fmt.Errorf("start room %d: %w", startRoom, world.ErrUnknownRoom)
	}
	s := &Session{
		ID:          uuid.New().String(),
		Possessions: inventory.NewLedger(),
		world:       w,
		current:     start,
		victoryRoom: DefaultVictoryRoom,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.ID))
	start.MarkExplored()
	s.updateState(false)
	return s, nil
}

// Room returns the room the player is in.
func (s *Session) Room() *world.Room {
	return s.current
}

// State returns the game's progress.
func (s *Session) State() State {
	return s.state
}

// GameOver reports whether the player has reached the victory room or been lost.
func (s *Session) GameOver() bool {
	return s.state != Playing
}

// CanMove reports whether dir is a route out of the current room.
func (s *Session) CanMove(dir world.Direction) bool {
	return s.current.HasRoute(dir)
}

// Move resolves dir from the current room and applies the result.
//
// Precondition: the game is not over.
// Postcondition: the current room is the movement's destination, if any, and
// the state reflects a win or loss.
func (s *Session) Move(dir world.Direction) world.Movement {
	from := s.current
	mv := s.world.Resolve(from, dir, s.Possessions)
	if dest, ok := mv.Destination(); ok {
		s.current = dest
	}
	s.updateState(mv.Lost)

	s.logger.Debug("move",
		zap.String("direction", string(dir)),
		zap.Int("from", from.ID),
		zap.Int("to", s.current.ID),
		zap.Int("steps", len(mv.Rooms)),
		zap.Stringer("state", s.state),
	)
	return mv
}

func (s *Session) updateState(lost bool) {
	switch {
	case lost:
		s.state = Lost
	case s.current.Name == s.victoryRoom:
		s.state = Won
	}
}

// Take moves the named item from the current room to the player.
//
// Postcondition: on success the player holds the item; otherwise ErrNoSuchItem
// is returned and nothing changes.
func (s *Session) Take(name string) (*inventory.Item, error) {
	item, err := inventory.Transfer(s.current.Contents, s.Possessions, name)
	if err != nil {
		return nil, fmt.Errorf("take %q: %w", name, ErrNoSuchItem)
	}
	s.logger.Debug("take", zap.String("item", name), zap.Int("room", s.current.ID))
	return item, nil
}

// Drop moves the named item from the player to the current room.
//
// Postcondition: on success the room holds the item; otherwise ErrNoSuchItem
// is returned and nothing changes.
func (s *Session) Drop(name string) (*inventory.Item, error) {
	item, err := inventory.Transfer(s.Possessions, s.current.Contents, name)
	if err != nil {
		return nil, fmt.Errorf("drop %q: %w", name, ErrNoSuchItem)
	}
	s.logger.Debug("drop", zap.String("item", name), zap.Int("room", s.current.ID))
	return item, nil
}

// Look returns the full description of the current room and its contents.
func (s *Session) Look() string {
	return s.current.Show()
}

// Inventory lists what the player carries.
func (s *Session) Inventory() string {
	if s.Possessions.IsEmpty() {
		return "Your inventory is empty."
	}
	return s.Possessions.String()
}
