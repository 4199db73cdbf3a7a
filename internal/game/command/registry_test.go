package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Len(t, r.Commands(), 6)
}

func TestResolve_AllBuiltins(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		input   string
		handler Handler
	}{
		{"QUIT", HandlerQuit},
		{"HELP", HandlerHelp},
		{"INVENTORY", HandlerInventory},
		{"LOOK", HandlerLook},
		{"TAKE", HandlerTake},
		{"DROP", HandlerDrop},
	}
	for _, tc := range tests {
		cmd, ok := r.Resolve(tc.input)
		require.True(t, ok, "command %q not found", tc.input)
		assert.Equal(t, tc.handler, cmd.Handler, "command %q", tc.input)
	}
}

func TestResolve_ItemCommands(t *testing.T) {
	r := DefaultRegistry()
	for _, name := range []string{"TAKE", "DROP"} {
		cmd, _ := r.Resolve(name)
		assert.True(t, cmd.TakesItem, name)
	}
	cmd, _ := r.Resolve("LOOK")
	assert.False(t, cmd.TakesItem)
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()
	_, ok := r.Resolve("XYZZY")
	assert.False(t, ok)
	_, ok = r.Resolve("look")
	assert.False(t, ok, "registry lookups are case sensitive; Parse uppercases input")
}

func TestResolve_Alias(t *testing.T) {
	r, err := NewRegistry([]Command{
		{Name: "LOOK", Aliases: []string{"EXAMINE"}, Handler: HandlerLook},
	})
	require.NoError(t, err)

	cmd, ok := r.Resolve("EXAMINE")
	require.True(t, ok)
	assert.Equal(t, "LOOK", cmd.Name)
}

func TestCommands_RegistrationOrder(t *testing.T) {
	r := DefaultRegistry()
	var names []string
	for _, cmd := range r.Commands() {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"QUIT", "HELP", "INVENTORY", "LOOK", "TAKE", "DROP"}, names)
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "LOOK", Handler: HandlerLook},
		{Name: "LOOK", Handler: HandlerLook},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestNewRegistry_DuplicateAlias(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "LOOK", Aliases: []string{"L"}, Handler: HandlerLook},
		{Name: "LIST", Aliases: []string{"L"}, Handler: HandlerInventory},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate alias")
}

func TestNewRegistry_AliasConflictsWithName(t *testing.T) {
	_, err := NewRegistry([]Command{
		{Name: "LOOK", Handler: HandlerLook},
		{Name: "INVENTORY", Aliases: []string{"LOOK"}, Handler: HandlerInventory},
	})
	assert.Error(t, err)
}

func TestNewRegistry_MissingHandler(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "DANCE"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no handler")
}

func TestHandler_String(t *testing.T) {
	assert.Equal(t, "take", HandlerTake.String())
	assert.Equal(t, "none", HandlerNone.String())
}
