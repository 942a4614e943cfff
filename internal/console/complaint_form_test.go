package console

import (
	"context"
	"testing"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComplaintSource struct {
	created []map[string]any
}

func (f *fakeComplaintSource) GetAllBookings(ctx context.Context) ([]model.Booking, error) {
	return []model.Booking{{ID: 5, GuestName: "Сидоров"}, {ID: 6, GuestName: "Орлова"}}, nil
}

func (f *fakeComplaintSource) CreateComplaint(ctx context.Context, draft map[string]any) error {
	f.created = append(f.created, draft)
	return nil
}

func TestComplaintFormSubmit(t *testing.T) {
	src := &fakeComplaintSource{}
	notified := 0
	form := NewComplaintForm(src, func(context.Context) { notified++ })
	ctx := context.Background()

	require.NoError(t, form.Mount(ctx))
	assert.Len(t, form.Snapshot().Bookings, 2)

	assert.ErrorIs(t, form.Set(FieldBookingID, "99"), ErrIllegalChoice)
	require.NoError(t, form.Set(FieldBookingID, "6"))
	require.NoError(t, form.Set(FieldReason, "  Не работает кондиционер "))

	require.NoError(t, form.Submit(ctx))
	require.Len(t, src.created, 1)
	assert.Equal(t, 6, src.created[0][FieldBookingID])
	assert.Equal(t, "Не работает кондиционер", src.created[0][FieldReason])
	assert.Equal(t, 1, notified)
	assert.True(t, form.Snapshot().Created)
}

func TestComplaintFormRequiresReason(t *testing.T) {
	src := &fakeComplaintSource{}
	form := NewComplaintForm(src, nil)
	require.NoError(t, form.Mount(context.Background()))
	require.NoError(t, form.Set(FieldBookingID, "5"))

	assert.Equal(t, []string{FieldReason}, form.Missing())

	var verr *ValidationError
	require.ErrorAs(t, form.Submit(context.Background()), &verr)
	assert.Empty(t, src.created)
}
