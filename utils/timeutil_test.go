package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "9:30", wantErr: true},  // single-digit hour
		{in: "09:5", wantErr: true},  // single-digit minute
		{in: "0930", wantErr: true},  // no separator
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := TimeToMinutes(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "09:30", MinutesToTime(570))
	assert.Equal(t, "23:59", MinutesToTime(1439))
	// wraps modulo one day
	assert.Equal(t, "00:30", MinutesToTime(1470))
	assert.Equal(t, "23:30", MinutesToTime(-30))
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("09:00", 90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", got)

	got, err = AddMinutes("23:30", 60)
	require.NoError(t, err)
	assert.Equal(t, "00:30", got)

	_, err = AddMinutes("nope", 10)
	require.Error(t, err)
}

func TestDuration(t *testing.T) {
	d, err := Duration("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, 90, d)

	// ordering is the caller's problem; a negative result comes back as-is
	d, err = Duration("10:30", "09:00")
	require.NoError(t, err)
	assert.Equal(t, -90, d)
}

func TestTimeToMinutesRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "06:15", "12:00", "18:45", "23:30"} {
		m, err := TimeToMinutes(s)
		require.NoError(t, err)
		assert.Equal(t, s, MinutesToTime(m))
	}
}
