package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftPayloadCoercion(t *testing.T) {
	d := Draft{
		FieldCategoryCode: "2",
		FieldRoomNumber:   " 101 ",
		FieldGuestName:    "Петров",
	}

	payload, err := d.payload(bookingIntFields, bookingBoolFields)
	require.NoError(t, err)
	assert.Equal(t, 2, payload[FieldCategoryCode])
	assert.Equal(t, 101, payload[FieldRoomNumber])
	assert.Equal(t, false, payload[FieldBabyBed])
	assert.Equal(t, "Петров", payload[FieldGuestName])
	assert.NotContains(t, payload, FieldPaymentMethodCode)
}

func TestDraftPayloadRejectsNonInteger(t *testing.T) {
	_, err := Draft{FieldRoomNumber: "сто один"}.payload(bookingIntFields, nil)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldRoomNumber, verr.Field)
}

func TestDraftBool(t *testing.T) {
	assert.True(t, Draft{FieldBabyBed: true}.Bool(FieldBabyBed))
	assert.True(t, Draft{FieldBabyBed: "on"}.Bool(FieldBabyBed))
	assert.False(t, Draft{}.Bool(FieldBabyBed))
}
