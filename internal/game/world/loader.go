package world

import (
	"fmt"
	"os"
)

// LoadFromFiles reads and validates a world from a room file and an item file.
//
// Precondition: both paths must point to readable WorldText files.
// Postcondition: Returns a validated World or a non-nil error.
func LoadFromFiles(roomsPath, itemsPath string) (*World, error) {
	roomFile, err := os.Open(roomsPath)
	if err != nil {
		return nil, fmt.Errorf("opening room file %s: %w", roomsPath, err)
	}
	defer roomFile.Close()

	itemFile, err := os.Open(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("opening item file %s: %w", itemsPath, err)
	}
	defer itemFile.Close()

	w, err := New(roomFile, itemFile)
	if err != nil {
		return nil, fmt.Errorf("loading world from %s and %s: %w", roomsPath, itemsPath, err)
	}
	return w, nil
}
