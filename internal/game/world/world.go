package world

import (
	"io"

	"github.com/cory-johannsen/adventure/internal/game/inventory"
)

// World is the loaded game world: every room keyed by ID and every item keyed
// by name. Routes refer to rooms by ID, never by pointer.
type World struct {
	rooms     map[int]*Room
	roomOrder []int
	items     map[string]*inventory.Item
	itemOrder []string
}

// New parses the room source, then the item source, and returns the world.
//
// Precondition: roomSrc and itemSrc must be non-nil readers.
// Postcondition: Returns a fully validated World, or a non-nil error if either
// source is empty or malformed.
func New(roomSrc, itemSrc io.Reader) (*World, error) {
	rooms, order, err := parseRooms(roomSrc)
	if err != nil {
		return nil, err
	}
	items, err := parseItems(itemSrc, rooms)
	if err != nil {
		return nil, err
	}

	w := &World{
		rooms:     rooms,
		roomOrder: order,
		items:     make(map[string]*inventory.Item, len(items)),
		itemOrder: make([]string, 0, len(items)),
	}
	for _, item := range items {
		w.items[item.Name] = item
		w.itemOrder = append(w.itemOrder, item.Name)
	}
	return w, nil
}

// Room returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (w *World) Room(id int) (*Room, bool) {
	r, ok := w.rooms[id]
	return r, ok
}

// Item returns the item with the given name.
func (w *World) Item(name string) (*inventory.Item, bool) {
	item, ok := w.items[name]
	return item, ok
}

// Rooms returns all rooms in source order.
func (w *World) Rooms() []*Room {
	out := make([]*Room, 0, len(w.roomOrder))
	for _, id := range w.roomOrder {
		out = append(out, w.rooms[id])
	}
	return out
}

// Items returns all items in source order.
func (w *World) Items() []*inventory.Item {
	out := make([]*inventory.Item, 0, len(w.itemOrder))
	for _, name := range w.itemOrder {
		out = append(out, w.items[name])
	}
	return out
}

// RoomCount returns the number of rooms.
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// ItemCount returns the number of items.
func (w *World) ItemCount() int {
	return len(w.items)
}
