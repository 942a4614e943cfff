package console

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Freeeeeet/hotel_console/internal/apiclient"
	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingSource struct {
	mu         sync.Mutex
	queries    []model.FreeRoomsFilter
	freeRooms  func(filter model.FreeRoomsFilter) ([]int, error)
	created    []map[string]any
	createErr  error
	lookupsErr error
}

func (f *fakeBookingSource) GetRoomCategories(ctx context.Context) ([]model.Lookup, error) {
	return []model.Lookup{{Code: 1, Name: "Стандарт"}, {Code: 2, Name: "Люкс"}}, f.lookupsErr
}

func (f *fakeBookingSource) GetPaymentMethods(ctx context.Context) ([]model.Lookup, error) {
	return []model.Lookup{{Code: 1, Name: "Наличные"}}, nil
}

func (f *fakeBookingSource) GetFreeRooms(ctx context.Context, filter model.FreeRoomsFilter) ([]int, error) {
	f.mu.Lock()
	f.queries = append(f.queries, filter)
	f.mu.Unlock()
	if f.freeRooms != nil {
		return f.freeRooms(filter)
	}
	return []int{101, 102}, nil
}

func (f *fakeBookingSource) CreateBooking(ctx context.Context, draft map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, draft)
	return f.createErr
}

func fillFilter(t *testing.T, form *BookingForm) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, form.Set(ctx, FieldStartDate, "2025-06-01"))
	require.NoError(t, form.Set(ctx, FieldEndDate, "2025-06-03"))
	require.NoError(t, form.Set(ctx, FieldCategoryCode, "1"))
}

func TestBookingFormMountLoadsLookups(t *testing.T) {
	form := NewBookingForm(&fakeBookingSource{}, nil)
	require.NoError(t, form.Mount(context.Background()))

	snap := form.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.Len(t, snap.Categories, 2)
	assert.Len(t, snap.PaymentMethods, 1)
}

func TestBookingFormMountFailure(t *testing.T) {
	form := NewBookingForm(&fakeBookingSource{lookupsErr: errors.New("down")}, nil)
	require.Error(t, form.Mount(context.Background()))
	assert.Equal(t, StatusFailed, form.Snapshot().Status)
}

func TestBookingFormFreeRoomsQuery(t *testing.T) {
	src := &fakeBookingSource{}
	form := NewBookingForm(src, nil)
	fillFilter(t, form)

	require.Len(t, src.queries, 1)
	assert.Equal(t, model.FreeRoomsFilter{StartDate: "2025-06-01", EndDate: "2025-06-03", CategoryCode: "1"}, src.queries[0])
	assert.Equal(t, []int{101, 102}, form.Snapshot().FreeRooms)

	require.NoError(t, form.Set(context.Background(), FieldCategoryCode, ""))
	assert.Len(t, src.queries, 1)
	assert.Nil(t, form.Snapshot().FreeRooms)
}

func TestBookingFormSameValueDoesNotRequery(t *testing.T) {
	src := &fakeBookingSource{}
	form := NewBookingForm(src, nil)
	fillFilter(t, form)

	require.NoError(t, form.Set(context.Background(), FieldCategoryCode, "1"))
	assert.Len(t, src.queries, 1)
}

func TestBookingFormRoomMustBeOffered(t *testing.T) {
	form := NewBookingForm(&fakeBookingSource{}, nil)
	ctx := context.Background()

	assert.ErrorIs(t, form.Set(ctx, FieldRoomNumber, "101"), ErrIllegalChoice)

	fillFilter(t, form)
	assert.ErrorIs(t, form.Set(ctx, FieldRoomNumber, "999"), ErrIllegalChoice)
	require.NoError(t, form.Set(ctx, FieldRoomNumber, "102"))
	assert.Equal(t, "102", form.Snapshot().Draft.String(FieldRoomNumber))

	require.NoError(t, form.Set(ctx, FieldEndDate, "2025-06-05"))
	assert.False(t, form.Snapshot().Draft.Has(FieldRoomNumber))
}

func TestBookingFormDiscardsStaleFreeRooms(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	src := &fakeBookingSource{
		freeRooms: func(filter model.FreeRoomsFilter) ([]int, error) {
			if filter.CategoryCode == "1" {
				close(firstStarted)
				<-releaseFirst
				return []int{101}, nil
			}
			return []int{201}, nil
		},
	}
	form := NewBookingForm(src, nil)
	ctx := context.Background()
	require.NoError(t, form.Set(ctx, FieldStartDate, "2025-06-01"))
	require.NoError(t, form.Set(ctx, FieldEndDate, "2025-06-03"))

	done := make(chan error, 1)
	go func() { done <- form.Set(ctx, FieldCategoryCode, "1") }()
	<-firstStarted

	require.NoError(t, form.Set(ctx, FieldCategoryCode, "2"))
	close(releaseFirst)

	assert.ErrorIs(t, <-done, ErrDiscarded)
	assert.Equal(t, []int{201}, form.Snapshot().FreeRooms)
}

func TestBookingFormFreeRoomsErrorOffersNothing(t *testing.T) {
	src := &fakeBookingSource{
		freeRooms: func(model.FreeRoomsFilter) ([]int, error) {
			return nil, errors.New("down")
		},
	}
	form := NewBookingForm(src, nil)
	ctx := context.Background()
	require.NoError(t, form.Set(ctx, FieldStartDate, "2025-06-01"))
	require.NoError(t, form.Set(ctx, FieldEndDate, "2025-06-03"))
	require.Error(t, form.Set(ctx, FieldCategoryCode, "1"))

	snap := form.Snapshot()
	assert.Error(t, snap.FreeRoomsErr)
	assert.NotNil(t, snap.FreeRooms)
	assert.Empty(t, snap.FreeRooms)
}

func TestBookingFormDerivedTimestamps(t *testing.T) {
	form := NewBookingForm(&fakeBookingSource{}, nil)
	ctx := context.Background()

	require.NoError(t, form.Set(ctx, FieldStartDate, "2025-06-01"))
	assert.Equal(t, "2025-06-01T14:00", form.Snapshot().Draft.String(FieldCheckIn))

	require.NoError(t, form.Set(ctx, FieldCheckIn, "2025-06-01T10:00"))
	assert.Equal(t, "2025-06-01T10:00", form.Snapshot().Draft.String(FieldCheckIn))

	require.NoError(t, form.Set(ctx, FieldEndDate, "2025-06-03"))
	snap := form.Snapshot()
	assert.Equal(t, "2025-06-01T10:00", snap.Draft.String(FieldCheckIn), "end date must not touch check-in")
	assert.Equal(t, "2025-06-03T12:00", snap.Draft.String(FieldCheckOut))

	require.NoError(t, form.Set(ctx, FieldStartDate, "2025-06-02"))
	assert.Equal(t, "2025-06-02T14:00", form.Snapshot().Draft.String(FieldCheckIn))
}

func TestBookingFormSubmitValidatesRequired(t *testing.T) {
	src := &fakeBookingSource{}
	form := NewBookingForm(src, nil)
	fillFilter(t, form)

	err := form.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{FieldRoomNumber, FieldGuestName, FieldGuestPassportNumber, FieldGuestPhoneNumber, FieldPaymentMethodCode}, verr.Missing)
	assert.Empty(t, src.created)
}

func TestBookingFormSubmitFailurePreservesDraft(t *testing.T) {
	src := &fakeBookingSource{createErr: errors.New("room is already booked")}
	created := false
	form := NewBookingForm(src, func(context.Context) { created = true })
	fillCompleteDraft(t, form)

	require.Error(t, form.Submit(context.Background()))

	snap := form.Snapshot()
	assert.False(t, created)
	assert.False(t, snap.Created)
	assert.EqualError(t, snap.SubmitErr, "room is already booked")
	assert.Equal(t, "Петров", snap.Draft.String(FieldGuestName))
}

func fillCompleteDraft(t *testing.T, form *BookingForm) {
	t.Helper()
	ctx := context.Background()
	fillFilter(t, form)
	require.NoError(t, form.Set(ctx, FieldRoomNumber, "101"))
	require.NoError(t, form.Set(ctx, FieldGuestName, "Петров"))
	require.NoError(t, form.Set(ctx, FieldGuestPassportNumber, "4510 123456"))
	require.NoError(t, form.Set(ctx, FieldGuestPhoneNumber, "+79990000000"))
	require.NoError(t, form.Set(ctx, FieldPaymentMethodCode, "1"))
	require.NoError(t, form.SetFlag(FieldBabyBed, true))
}

func TestBookingFormSubmitCreatesAndRefreshes(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []string
		posted   map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.Method+" "+r.URL.Path)
		mu.Unlock()

		switch r.URL.Path {
		case apiclient.PathGetFreeRooms:
			w.Write([]byte(`[101, 102]`))
		case apiclient.PathCreateBooking:
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			w.WriteHeader(http.StatusCreated)
		case apiclient.PathGetAllBookings:
			w.Write([]byte(`[{"id": 1, "room": 101}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()
	client := apiclient.New(srv.URL, srv.Client(), nil)

	list := NewListView(client.GetAllBookings, bookingRowID)
	form := NewBookingForm(client, func(ctx context.Context) {
		assert.NoError(t, list.Load(ctx))
	})
	fillCompleteDraft(t, form)
	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, []string{
		"GET /GetFreeRooms",
		"POST /CreateBooking",
		"GET /GetAllBookings",
	}, requests)

	// JSON numbers decode as float64
	assert.Equal(t, float64(1), posted[FieldCategoryCode])
	assert.Equal(t, float64(101), posted[FieldRoomNumber])
	assert.Equal(t, float64(1), posted[FieldPaymentMethodCode])
	assert.Equal(t, true, posted[FieldBabyBed])
	assert.Equal(t, "2025-06-01T14:00", posted[FieldCheckIn])
	assert.Equal(t, "2025-06-03T12:00", posted[FieldCheckOut])
	assert.Equal(t, "Петров", posted[FieldGuestName])

	assert.True(t, form.Snapshot().Created)
	assert.Len(t, list.Snapshot().Items, 1)
}

func TestBookingFormClosedDiscards(t *testing.T) {
	form := NewBookingForm(&fakeBookingSource{}, nil)
	form.Close()

	assert.ErrorIs(t, form.Mount(context.Background()), ErrDiscarded)
	assert.ErrorIs(t, form.Set(context.Background(), FieldGuestName, "x"), ErrDiscarded)
	assert.ErrorIs(t, form.Submit(context.Background()), ErrDiscarded)
}
