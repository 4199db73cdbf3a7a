// Package console runs an interactive game over a line-oriented reader and writer.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/inventory"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Player-facing messages.
const (
	MsgWelcome       = "Welcome, to the Adventure games.\nMay the randomly generated numbers be ever in your favour.\n"
	MsgMoveHelp      = "You can move by typing directions such as EAST/WEST/IN/OUT."
	MsgInvalid       = "Invalid command."
	MsgNoRoute       = "No such route."
	MsgNoItem        = "No such item."
	MsgQuit          = "Thanks for playing!"
	MsgWon           = "Congratulations, you have won!"
	MsgLost          = "You are lost. Game over."
	maxInputLineSize = 64 * 1024
)

// Console is the read-eval-print loop for one game session.
type Console struct {
	sess     *session.Session
	registry *command.Registry
	synonyms command.Synonyms
	prompt   string
	color    bool
	width    int
	logger   *zap.Logger
}

// New creates a Console.
//
// Precondition: sess and registry must be non-nil; synonyms may be nil.
// Postcondition: Returns a Console ready to Run.
func New(sess *session.Session, registry *command.Registry, synonyms command.Synonyms, cfg config.ConsoleConfig, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		sess:     sess,
		registry: registry,
		synonyms: synonyms,
		prompt:   cfg.Prompt,
		color:    cfg.Color,
		width:    cfg.Width,
		logger:   logger.With(zap.String("session", sess.ID)),
	}
}

// Run plays the game, reading commands from in and writing to out, until the
// game is over, the player quits, or in is exhausted.
//
// Postcondition: Returns nil on a normal end, or the first read or write error.
func (c *Console) Run(in io.Reader, out io.Writer) error {
	w := &writer{out: out}
	w.line(MsgWelcome)
	w.line(c.style(White, c.wrap(c.sess.Room().Description)))

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxInputLineSize)
	quit := false
	for !quit && !c.sess.GameOver() && w.err == nil {
		w.write(c.prompt)
		if !scanner.Scan() {
			w.line("")
			break
		}
		quit = c.handle(w, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	switch c.sess.State() {
	case session.Won:
		w.line(c.style(Green, MsgWon))
	case session.Lost:
		w.line(c.style(Red, MsgLost))
	}
	c.logger.Info("game ended",
		zap.Stringer("state", c.sess.State()),
		zap.Int("room", c.sess.Room().ID),
		zap.Bool("quit", quit),
	)
	if w.err != nil {
		return fmt.Errorf("writing output: %w", w.err)
	}
	return nil
}

// handle executes one input line. It returns true when the player quits.
func (c *Console) handle(w *writer, line string) bool {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return false
	}
	word := c.synonyms.Expand(parsed.Command)
	c.logger.Debug("command", zap.String("input", parsed.Command), zap.String("command", word))

	dir := world.Direction(word)
	if dir != world.Forced && c.sess.CanMove(dir) {
		c.move(w, dir)
		return false
	}

	cmd, ok := c.registry.Resolve(word)
	if !ok {
		w.line(c.style(Red, MsgInvalid))
		return false
	}

	switch cmd.Handler {
	case command.HandlerQuit:
		w.line(c.style(Cyan, MsgQuit))
		return true
	case command.HandlerHelp:
		w.line(c.help())
	case command.HandlerLook:
		w.line(c.style(White, c.wrap(c.sess.Look())))
	case command.HandlerInventory:
		w.line(c.sess.Inventory())
	case command.HandlerTake:
		c.transfer(w, c.sess.Take, parsed.Arg(), "taken")
	case command.HandlerDrop:
		c.transfer(w, c.sess.Drop, parsed.Arg(), "dropped")
	default:
		w.line(c.style(Red, MsgInvalid))
	}
	return false
}

func (c *Console) move(w *writer, dir world.Direction) {
	mv := c.sess.Move(dir)
	if !mv.Moved() {
		w.line(c.style(Red, MsgNoRoute))
		return
	}
	for _, room := range mv.Rooms {
		w.line(c.style(BrightYellow, c.wrap(room.Render())))
	}
}

func (c *Console) transfer(w *writer, op func(string) (*inventory.Item, error), name, verb string) {
	if name == "" {
		w.line(c.style(Red, MsgNoItem))
		return
	}
	if _, err := op(name); err != nil {
		if !errors.Is(err, session.ErrNoSuchItem) {
			c.logger.Warn("item transfer failed", zap.String("item", name), zap.Error(err))
		}
		w.line(c.style(Red, MsgNoItem))
		return
	}
	w.line(c.style(Green, fmt.Sprintf("%s %s.", name, verb)))
}

func (c *Console) help() string {
	var b strings.Builder
	b.WriteString(MsgMoveHelp)
	for _, cmd := range c.registry.Commands() {
		b.WriteString("\n")
		b.WriteString(c.style(BrightCyan, cmd.Usage))
		b.WriteString(" ")
		b.WriteString(cmd.Help)
	}
	return b.String()
}

// wrap word-wraps text to the configured width.
func (c *Console) wrap(text string) string {
	if c.width <= 0 {
		return text
	}
	return wordwrap.String(text, c.width)
}

func (c *Console) style(color, text string) string {
	if !c.color {
		return text
	}
	return Colorize(color, text)
}

// writer remembers the first write error so the loop can check it once per command.
type writer struct {
	out io.Writer
	err error
}

func (w *writer) write(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

func (w *writer) line(s string) {
	w.write(s + "\n")
}
