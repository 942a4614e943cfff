package common

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strconv"
	"testing"

	"github.com/Freeeeeet/hotel_console/internal/apiclient"
	"github.com/Freeeeeet/hotel_console/internal/console"
	"github.com/Freeeeeet/hotel_console/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/Freeeeeet/hotel_console/internal/service"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id   int
	name string
}

var testConfig = ListConfig[row]{
	Prefix:   "tt",
	Title:    "Записи",
	Empty:    "пусто",
	RowID:    func(r row) string { return strconv.Itoa(r.id) },
	RowLine:  func(r row) string { return r.name },
	RowLabel: func(r row) string { return "#" + strconv.Itoa(r.id) },
	Actions: func(r row) []models.InlineKeyboardButton {
		return []models.InlineKeyboardButton{
			keyboard.Button("ok", fmt.Sprintf("tt_ok:%d", r.id)),
		}
	},
}

func callbackData(kb *models.InlineKeyboardMarkup) []string {
	var data []string
	for _, r := range kb.InlineKeyboard {
		for _, b := range r {
			data = append(data, b.CallbackData)
		}
	}
	return data
}

func rows(n int) []row {
	items := make([]row, n)
	for i := range items {
		items[i] = row{id: i + 1, name: fmt.Sprintf("row %d", i+1)}
	}
	return items
}

func TestParseCallback(t *testing.T) {
	prefix, action, arg := ParseCallback("cp_resolve:9:3")
	assert.Equal(t, "cp", prefix)
	assert.Equal(t, "resolve", action)
	assert.Equal(t, "9:3", arg)

	prefix, action, arg = ParseCallback("menu_main")
	assert.Equal(t, "menu", prefix)
	assert.Equal(t, "main", action)
	assert.Empty(t, arg)

	id, status, err := ParseIDPair("9:3")
	require.NoError(t, err)
	assert.EqualValues(t, 9, id)
	assert.Equal(t, 3, status)

	_, err = ParseID("abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBuildListScreenLoadingAndFailed(t *testing.T) {
	text, kb := BuildListScreen(testConfig, console.ListSnapshot[row]{Status: console.StatusLoading}, 0)
	assert.Contains(t, text, "Загрузка")
	assert.Equal(t, []string{keyboard.MainMenuData}, callbackData(kb))

	failed := console.ListSnapshot[row]{
		Status: console.StatusFailed,
		Err:    &apiclient.APIError{Kind: apiclient.KindServer, Message: "server down"},
	}
	text, kb = BuildListScreen(testConfig, failed, 0)
	assert.Contains(t, text, "server down")
	assert.Equal(t, []string{"tt_refresh", keyboard.MainMenuData}, callbackData(kb))
}

func TestBuildListScreenEmpty(t *testing.T) {
	text, kb := BuildListScreen(testConfig, console.ListSnapshot[row]{Status: console.StatusReady, Items: []row{}}, 0)
	assert.Contains(t, text, "пусто")
	assert.Equal(t, []string{"tt_refresh", keyboard.MainMenuData}, callbackData(kb))
}

func TestBuildListScreenOpenMenu(t *testing.T) {
	snap := console.ListSnapshot[row]{
		Status:   console.StatusReady,
		Items:    rows(2),
		OpenRow:  "2",
		MenuOpen: true,
	}
	text, kb := BuildListScreen(testConfig, snap, 0)

	assert.Contains(t, text, "1. row 1")
	assert.Contains(t, text, "2. row 2")
	assert.Equal(t, []string{"tt_menu:1", "tt_menu:2", "tt_ok:2", "tt_refresh", keyboard.MainMenuData}, callbackData(kb))
	assert.Equal(t, "▾ #2", kb.InlineKeyboard[1][0].Text)
}

func TestBuildListScreenActionError(t *testing.T) {
	snap := console.ListSnapshot[row]{
		Status:    console.StatusReady,
		Items:     rows(1),
		OpenRow:   "1",
		MenuOpen:  true,
		ActionErr: &apiclient.APIError{Kind: apiclient.KindServer, Message: "already confirmed"},
	}
	text, kb := BuildListScreen(testConfig, snap, 0)
	assert.Contains(t, text, "already confirmed")
	assert.Contains(t, callbackData(kb), "tt_ok:1")
}

func TestBuildListScreenPagination(t *testing.T) {
	snap := console.ListSnapshot[row]{Status: console.StatusReady, Items: rows(PageSize + 2)}

	text, kb := BuildListScreen(testConfig, snap, 1)
	assert.Contains(t, text, fmt.Sprintf("%d. row %d", PageSize+1, PageSize+1))
	assert.NotContains(t, text, "1. row 1\n")
	assert.Contains(t, callbackData(kb), "tt_page:0")

	// Номер страницы за пределами списка приводится к последней
	clamped, _ := BuildListScreen(testConfig, snap, 7)
	assert.Equal(t, text, clamped)

	counted := testConfig
	counted.Noun = func(int) string { return "записей" }
	text, _ = BuildListScreen(counted, snap, 0)
	assert.Contains(t, text, fmt.Sprintf("Всего: %d записей", PageSize+2))
}

func TestBuildDetailScreen(t *testing.T) {
	cfg := DetailConfig[row]{
		Prefix:   "tt",
		Title:    "Запись",
		NotFound: "не найдено",
		BackData: "tt_open",
		Body:     func(r row) string { return r.name },
	}

	text, kb := BuildDetailScreen(cfg, console.DetailSnapshot[row]{Status: console.StatusNotFound}, "tt_open")
	assert.Contains(t, text, "не найдено")
	assert.Equal(t, []string{"tt_open", keyboard.MainMenuData}, callbackData(kb))

	item := row{id: 3, name: "row 3"}
	text, _ = BuildDetailScreen(cfg, console.DetailSnapshot[row]{Status: console.StatusReady, Item: &item}, "tt_open")
	assert.Contains(t, text, "row 3")

	text, _ = BuildDetailScreen(cfg, console.DetailSnapshot[row]{Status: console.StatusFailed, Err: errors.New("boom")}, "tt_open")
	assert.Contains(t, text, "Произошла ошибка")
}

func TestBuildMainMenuEscapesUsername(t *testing.T) {
	text, kb := BuildMainMenu("<admin>")
	assert.Contains(t, text, "&lt;admin&gt;")

	data := callbackData(kb)
	for _, want := range []string{DashboardData, BookingsData, ComplaintsData, PaymentsData, RoomsData, NewBookingData, NewComplaintData, LogoutData} {
		assert.Contains(t, data, want)
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Contains(t, ErrorMessage(service.ErrSessionExpired), "Сессия истекла")
	assert.Contains(t, ErrorMessage(service.ErrNotAuthenticated), "/login")
	assert.Equal(t, "❌ booking not found", ErrorMessage(&apiclient.APIError{Kind: apiclient.KindServer, Message: "booking not found"}))
	assert.Contains(t, ErrorMessage(ErrActionUnavailable), "недоступно")
}

func TestGenerateOccupancyImage(t *testing.T) {
	data, err := GenerateOccupancyImage(model.Metrics{Occupancy: 64.2, FreeRooms: 10, RoomsUnderMaintenance: 2})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, dashboardWidth, img.Bounds().Dx())
	assert.Equal(t, dashboardHeight, img.Bounds().Dy())
}

func TestOccupancySegments(t *testing.T) {
	segments := occupancySegments(model.Metrics{Occupancy: 60, FreeRooms: 3, RoomsUnderMaintenance: 1})
	require.Len(t, segments, 3)
	assert.InDelta(t, 60, segments[0].value, 0.001)
	assert.InDelta(t, 30, segments[1].value, 0.001)
	assert.InDelta(t, 10, segments[2].value, 0.001)

	// Без данных о номерах всё, что не занято, считается свободным
	segments = occupancySegments(model.Metrics{Occupancy: 150})
	assert.InDelta(t, 100, segments[0].value, 0.001)
	assert.InDelta(t, 0, segments[1].value, 0.001)
}

func TestActionReply(t *testing.T) {
	reply, failed := actionReply(nil, "✅ Подтверждено")
	assert.False(t, failed)
	assert.Equal(t, "✅ Подтверждено", reply)

	// Перезагрузку вытеснил более новый запрос, но само действие выполнено
	reply, failed = actionReply(console.ErrDiscarded, "✅ Подтверждено")
	assert.False(t, failed)
	assert.Equal(t, "✅ Подтверждено", reply)

	reply, failed = actionReply(&apiclient.APIError{Kind: apiclient.KindServer, Message: "already confirmed"}, "✅ Подтверждено")
	assert.True(t, failed)
	assert.Equal(t, "❌ already confirmed", reply)
}
