// Package inventory provides items and the ledgers that hold them: a room's
// contents and the player's possessions.
package inventory

import "strings"

// Item is a portable object defined by the item data file.
type Item struct {
	// Name identifies the item and is the key used by every ledger.
	Name string
	// Description is shown in room and inventory listings.
	Description string
	// Location is the ID of the room the item starts the game in.
	Location int
}

// String returns the item as "NAME: description".
func (i *Item) String() string {
	return strings.ToUpper(i.Name) + ": " + i.Description
}
