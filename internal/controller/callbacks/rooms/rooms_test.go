package rooms

import (
	"testing"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLine(t *testing.T) {
	line := RowLine(model.Room{Number: 204, CategoryName: "Люкс", StateName: "На обслуживании", Capacity: 3})
	assert.Equal(t, "№204 · Люкс · 👥 3 · 🔧 На обслуживании", line)
}

func TestRowActionsOnlyDelete(t *testing.T) {
	actions := RowActions(model.Room{Number: 204})
	require.Len(t, actions, 1)
	assert.Equal(t, "rm_delete:204", actions[0].CallbackData)
}
