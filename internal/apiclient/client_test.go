package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", srv.Client(), nil)
}

func TestRequestAttachesTokenAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(RequestIDHeader)
		w.Write([]byte(`[]`))
	})

	_, err := client.WithToken("secret").GetAllRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestRequestWithoutTokenSendsNoAuthorization(t *testing.T) {
	var hasAuth bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`[]`))
	})

	_, err := client.GetAllRooms(context.Background())
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestWithTokenDoesNotMutateOriginal(t *testing.T) {
	base := New("http://example.test/api", nil, nil)
	_ = base.WithToken("abc")
	assert.Empty(t, base.token)
}

func TestServerErrorCarriesServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "booking not found"}`, http.StatusNotFound)
	})

	_, err := client.GetBookingByID(context.Background(), 7)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindServer, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "booking not found", apiErr.Error())
}

func TestServerErrorWithoutMessageUsesGenericText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.ConfirmBooking(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, GenericMessage, err.Error())
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := New(srv.URL, srv.Client(), nil)
	srv.Close()

	_, err := client.GetAllPayments(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Equal(t, GenericMessage, apiErr.Message)
}

func TestListNotFoundIsEmptyCollection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "no bookings found"}`, http.StatusNotFound)
	})

	bookings, err := client.GetAllBookings(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestDetailEmptyBodyIsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/GetComplaintByID/5", r.URL.Path)
		w.Write([]byte("null"))
	})

	complaint, err := client.GetComplaintByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, complaint)
}

func TestConfirmAndResolveQueryParameters(t *testing.T) {
	var got []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		got = append(got, r.URL.Path+"?"+r.URL.RawQuery)
	})

	ctx := context.Background()
	require.NoError(t, client.ConfirmBooking(ctx, 42))
	require.NoError(t, client.ConfirmPayment(ctx, 3))
	require.NoError(t, client.ResolveComplaint(ctx, 9, model.ComplaintStatusResolved))

	assert.Equal(t, []string{
		"/api/ConfirmBooking?id=42",
		"/api/ConfirmPayment?id=3",
		"/api/ResolveComplaint?id=9&statusCode=3",
	}, got)
}

func TestCreateBookingRequiresCreatedStatus(t *testing.T) {
	status := http.StatusCreated
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(data, &body))
		w.WriteHeader(status)
	})

	ctx := context.Background()
	require.NoError(t, client.CreateBooking(ctx, map[string]any{"room_number": 101}))
	assert.EqualValues(t, 101, body["room_number"])

	status = http.StatusAccepted
	err := client.CreateBooking(ctx, map[string]any{})
	require.Error(t, err)
}

func TestGetFreeRoomsSendsFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2025-06-01", q.Get("start_date"))
		assert.Equal(t, "2025-06-03", q.Get("end_date"))
		assert.Equal(t, "1", q.Get("category_code"))
		w.Write([]byte(`[101, 102]`))
	})

	rooms, err := client.GetFreeRooms(context.Background(), model.FreeRoomsFilter{
		StartDate:    "2025-06-01",
		EndDate:      "2025-06-03",
		CategoryCode: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{101, 102}, rooms)
}

func TestLoginDecodesToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin", req.Username)
		assert.Equal(t, "pw", req.Password)
		w.Write([]byte(`{"token": "t0k", "username": "admin"}`))
	})

	resp, err := client.Login(context.Background(), "admin", "pw")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "t0k", resp.Token)
	assert.Equal(t, "admin", resp.Username)
}

func TestNilLookupCacheLoadsEveryTime(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[{"code": 1, "name": "Стандарт"}]`))
	})
	client = client.WithLookupCache(NewLookupCache(nil, 0, "", nil))

	for i := 0; i < 2; i++ {
		categories, err := client.GetRoomCategories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []model.Lookup{{Code: 1, Name: "Стандарт"}}, categories)
	}
	assert.Equal(t, 2, calls)
}

func TestLookupCacheEnabledReflectsAttachedRedis(t *testing.T) {
	client := New("http://hotel.local", nil, nil)
	assert.False(t, client.LookupCacheEnabled())
	assert.False(t, client.WithLookupCache(NewLookupCache(nil, 0, "", nil)).LookupCacheEnabled())

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = rdb.Close() })
	cached := client.WithLookupCache(NewLookupCache(rdb, time.Minute, "", nil))
	assert.True(t, cached.LookupCacheEnabled())
	assert.False(t, client.LookupCacheEnabled())
}
