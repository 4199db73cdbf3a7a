// Package command provides the command registry, line parser, and synonym
// table used by the game frontends.
package command

// Handler identifies the code that carries out a command.
type Handler int

// Handlers for the built-in commands. Movement has no handler of its own:
// any word naming a route out of the current room moves the player.
const (
	HandlerNone Handler = iota
	HandlerHelp
	HandlerQuit
	HandlerLook
	HandlerInventory
	HandlerTake
	HandlerDrop
)

// String returns the handler's lowercase name.
func (h Handler) String() string {
	switch h {
	case HandlerHelp:
		return "help"
	case HandlerQuit:
		return "quit"
	case HandlerLook:
		return "look"
	case HandlerInventory:
		return "inventory"
	case HandlerTake:
		return "take"
	case HandlerDrop:
		return "drop"
	default:
		return "none"
	}
}

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name, uppercase.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage is the syntax shown in help, e.g. "TAKE <item>".
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Handler selects the code that carries out the command.
	Handler Handler
	// TakesItem reports whether the command needs an item argument.
	TakesItem bool
}

// BuiltinCommands returns all built-in commands in help order.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "QUIT", Usage: "QUIT", Help: "quits the game.", Handler: HandlerQuit},
		{Name: "HELP", Usage: "HELP", Help: "prints instructions for the game.", Handler: HandlerHelp},
		{Name: "INVENTORY", Usage: "INVENTORY", Help: "lists the items in your inventory.", Handler: HandlerInventory},
		{Name: "LOOK", Usage: "LOOK", Help: "lists the complete description of the room and its contents.", Handler: HandlerLook},
		{Name: "TAKE", Usage: "TAKE <item>", Help: "takes an item from the room.", Handler: HandlerTake, TakesItem: true},
		{Name: "DROP", Usage: "DROP <item>", Help: "drops an item from your inventory.", Handler: HandlerDrop, TakesItem: true},
	}
}
