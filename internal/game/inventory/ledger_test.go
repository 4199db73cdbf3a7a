package inventory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func lamp() *Item {
	return &Item{Name: "LAMP", Description: "A shiny brass lamp", Location: 1}
}

func keys() *Item {
	return &Item{Name: "KEYS", Description: "A set of keys", Location: 2}
}

func TestItem_String(t *testing.T) {
	item := &Item{Name: "lamp", Description: "A shiny brass lamp"}
	assert.Equal(t, "LAMP: A shiny brass lamp", item.String())
}

func TestLedger_AddAndHas(t *testing.T) {
	l := NewLedger()
	assert.True(t, l.IsEmpty())

	assert.True(t, l.Add(lamp()))
	assert.True(t, l.Has("LAMP"))
	assert.False(t, l.Has("KEYS"))
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.IsEmpty())
}

func TestLedger_AddDuplicateIsNoop(t *testing.T) {
	l := NewLedger()
	require.True(t, l.Add(lamp()))
	assert.False(t, l.Add(lamp()))
	assert.Equal(t, 1, l.Len())
}

func TestLedger_Remove(t *testing.T) {
	l := NewLedger()
	l.Add(lamp())
	l.Add(keys())

	item, err := l.Remove("LAMP")
	require.NoError(t, err)
	assert.Equal(t, "LAMP", item.Name)
	assert.False(t, l.Has("LAMP"))
	assert.Equal(t, []*Item{keys()}, l.Items())
}

func TestLedger_RemoveMissing(t *testing.T) {
	l := NewLedger()
	_, err := l.Remove("LAMP")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLedger_ItemsPreservesInsertionOrder(t *testing.T) {
	l := NewLedger()
	l.Add(keys())
	l.Add(lamp())

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "KEYS", items[0].Name)
	assert.Equal(t, "LAMP", items[1].Name)
}

func TestLedger_String(t *testing.T) {
	l := NewLedger()
	assert.Equal(t, "", l.String())

	l.Add(keys())
	l.Add(lamp())
	assert.Equal(t, "KEYS: A set of keys\nLAMP: A shiny brass lamp", l.String())
}

func TestTransfer(t *testing.T) {
	room := NewLedger()
	player := NewLedger()
	room.Add(lamp())

	item, err := Transfer(room, player, "LAMP")
	require.NoError(t, err)
	assert.Equal(t, "LAMP", item.Name)
	assert.False(t, room.Has("LAMP"))
	assert.True(t, player.Has("LAMP"))
}

func TestTransfer_MissingLeavesBothUnchanged(t *testing.T) {
	room := NewLedger()
	player := NewLedger()
	player.Add(keys())

	_, err := Transfer(room, player, "LAMP")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, room.IsEmpty())
	assert.Equal(t, 1, player.Len())
}

func TestTransfer_DestinationHoldsItem(t *testing.T) {
	room := NewLedger()
	player := NewLedger()
	room.Add(lamp())
	player.Add(lamp())

	_, err := Transfer(room, player, "LAMP")
	assert.Error(t, err)
	assert.True(t, room.Has("LAMP"))
}

// Property: any sequence of transfers between two ledgers conserves the set of items.
func TestPropertyTransferConservesItems(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "items")
		a, b := NewLedger(), NewLedger()
		for i := 0; i < n; i++ {
			a.Add(&Item{Name: fmt.Sprintf("ITEM%d", i)})
		}

		steps := rapid.IntRange(0, 50).Draw(t, "steps")
		for s := 0; s < steps; s++ {
			name := fmt.Sprintf("ITEM%d", rapid.IntRange(0, n-1).Draw(t, "item"))
			if rapid.Bool().Draw(t, "direction") {
				_, _ = Transfer(a, b, name)
			} else {
				_, _ = Transfer(b, a, name)
			}
			if a.Len()+b.Len() != n {
				t.Fatalf("item count changed: %d + %d != %d", a.Len(), b.Len(), n)
			}
			if a.Has(name) == b.Has(name) {
				t.Fatalf("item %s held by both or neither ledger", name)
			}
		}
	})
}
