// Package exporter renders a loaded world as YAML for content review.
package exporter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

// NameToID converts a display name to a stable snake_case identifier.
//
// Postcondition: result is lowercase, contains only [a-z0-9_], and is
// idempotent (NameToID(NameToID(s)) == NameToID(s)).
func NameToID(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	for _, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Build converts w into a Document. Room item lists reflect each room's
// current contents, which equal the starting contents until a game is played.
//
// Precondition: w must be non-nil.
// Postcondition: the Document has one RoomDoc per room and one ItemDoc per item.
func Build(game string, w *world.World) *Document {
	doc := &Document{Game: game}
	for _, room := range w.Rooms() {
		rd := RoomDoc{
			ID:          room.ID,
			Key:         NameToID(room.Name),
			Name:        room.Name,
			Description: room.Description,
		}
		for _, dir := range room.Directions() {
			route := RouteDoc{Direction: string(dir)}
			for _, c := range room.Candidates(dir) {
				route.Candidates = append(route.Candidates, CandidateDoc{Target: c.Target, Requires: c.Requires})
			}
			rd.Routes = append(rd.Routes, route)
		}
		for _, item := range room.Contents.Items() {
			rd.Items = append(rd.Items, item.Name)
		}
		doc.Rooms = append(doc.Rooms, rd)
	}
	for _, item := range w.Items() {
		doc.Items = append(doc.Items, ItemDoc{
			Name:        item.Name,
			Description: item.Description,
			Location:    item.Location,
		})
	}
	return doc
}

// Marshal renders w as a YAML document.
//
// Precondition: w must be non-nil.
// Postcondition: Returns YAML that decodes back into an equivalent Document,
// or a non-nil error.
func Marshal(game string, w *world.World) ([]byte, error) {
	doc := Build(game, w)
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serialising world: %w", err)
	}

	// Validate output is loadable before handing it out.
	var check Document
	if err := yaml.Unmarshal(data, &check); err != nil {
		return nil, fmt.Errorf("exported world failed validation: %w", err)
	}
	if len(check.Rooms) != len(doc.Rooms) || len(check.Items) != len(doc.Items) {
		return nil, fmt.Errorf("exported world failed validation: got %d rooms and %d items, want %d and %d",
			len(check.Rooms), len(check.Items), len(doc.Rooms), len(doc.Items))
	}
	return data, nil
}

// WriteFile renders w and writes it to path, or to stdout when path is empty.
//
// Postcondition: the YAML is written, or a non-nil error is returned.
func WriteFile(path, game string, w *world.World) error {
	data, err := Marshal(game, w)
	if err != nil {
		return err
	}
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing world to stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing world to %s: %w", path, err)
	}
	return nil
}
