package keyboard

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginationButtons(t *testing.T) {
	assert.Nil(t, PaginationButtons("bk_page:", 0, 1))

	first := PaginationButtons("bk_page:", 0, 3)
	require.Len(t, first, 2)
	assert.Equal(t, NoopData, first[0].CallbackData)
	assert.Equal(t, "📄 1/3", first[0].Text)
	assert.Equal(t, "bk_page:1", first[1].CallbackData)

	middle := PaginationButtons("bk_page:", 1, 3)
	require.Len(t, middle, 3)
	assert.Equal(t, "bk_page:0", middle[0].CallbackData)
	assert.Equal(t, "bk_page:2", middle[2].CallbackData)
}

func TestPageHelpers(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 8))
	assert.Equal(t, 1, TotalPages(8, 8))
	assert.Equal(t, 2, TotalPages(9, 8))

	assert.Equal(t, 0, ClampPage(-1, 2))
	assert.Equal(t, 1, ClampPage(5, 2))

	start, end := PageBounds(1, 8, 10)
	assert.Equal(t, 8, start)
	assert.Equal(t, 10, end)

	start, end = PageBounds(3, 8, 10)
	assert.Equal(t, 10, start)
	assert.Equal(t, 10, end)
}

func TestChunkAndBuilder(t *testing.T) {
	buttons := []models.InlineKeyboardButton{
		Button("101", "nb_room:101"),
		Button("102", "nb_room:102"),
		Button("103", "nb_room:103"),
		Button("104", "nb_room:104"),
		Button("105", "nb_room:105"),
	}

	b := NewBuilder().Grid(buttons, 4)
	b.Row()
	b.AddRows([][]models.InlineKeyboardButton{nil, {MainMenuButton()}})

	markup := b.Build()
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Len(t, markup.InlineKeyboard[0], 4)
	assert.Equal(t, "105", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, MainMenuButton(), markup.InlineKeyboard[2][0])
}

func TestEmptyBuilderStillClearsKeyboard(t *testing.T) {
	markup := NewBuilder().Row().Build()
	require.NotNil(t, markup.InlineKeyboard)
	assert.Empty(t, markup.InlineKeyboard)
}

func TestCheckboxAndSelected(t *testing.T) {
	assert.Equal(t, "☑️ Кроватка", Checkbox("Кроватка", true))
	assert.Equal(t, "⬜️ Кроватка", Checkbox("Кроватка", false))
	assert.Equal(t, "✅ Люкс", Selected("Люкс", true))
	assert.Equal(t, "Люкс", Selected("Люкс", false))
}
