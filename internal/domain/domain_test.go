package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingState(t *testing.T) {
	testCases := []struct {
		in      string
		want    BookingState
		wantErr bool
	}{
		{in: "", want: BookingStateAll},
		{in: "ALL", want: BookingStateAll},
		{in: "CURRENT", want: BookingStateCurrent},
		{in: "PAST", want: BookingStatePast},
		{in: "FUTURE", want: BookingStateFuture},
		{in: "WAITING", want: BookingStateWaiting},
		{in: "REJECTED", want: BookingStateRejected},
		{in: "current", wantErr: true},
		{in: "UNSUPPORTED_STATUS", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseBookingState(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
				assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPage(t *testing.T) {
	p, err := NewPage(0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Offset())
	assert.Equal(t, 10, p.Limit())

	p, err = NewPage(5, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Offset())

	p, err = NewPage(25, 10)
	require.NoError(t, err)
	assert.Equal(t, 20, p.Offset())

	_, err = NewPage(-1, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPage(0, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestErrorKinds(t *testing.T) {
	err := NotFound("user %d not found", 7)
	assert.Equal(t, "user 7 not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidation)

	assert.ErrorIs(t, Conflict("email taken"), ErrConflict)
	assert.ErrorIs(t, Validation("bad"), ErrValidation)
}
