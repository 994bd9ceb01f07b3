package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateString(t *testing.T) {
	d := NewDateString(2025, time.March, 5)
	assert.Equal(t, "2025-03-05", d.String())
}

func TestNewDateStringFromTime(t *testing.T) {
	// Компоненты даты берутся как есть, без конверсии в UTC
	late := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.Local)
	assert.Equal(t, "2025-03-10", NewDateStringFromTime(late).String())
}

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2025-03-10", wantErr: false},
		{name: "valid leap day", input: "2024-02-29", wantErr: false},
		{name: "nonexistent day", input: "2025-02-30", wantErr: true},
		{name: "non-leap february 29", input: "2025-02-29", wantErr: true},
		{name: "month out of range", input: "2025-13-01", wantErr: true},
		{name: "wrong separator", input: "2025/03/10", wantErr: true},
		{name: "missing day", input: "2025-03", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDateString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, d.String())
		})
	}
}

func TestDateString_Components(t *testing.T) {
	year, month, day, err := DateString("2025-12-31").Components()
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.December, month)
	assert.Equal(t, 31, day)
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-03-28")

	// Переход через границу месяца
	next, err := d.AddDays(5)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-02", next.String())

	// Отрицательный сдвиг
	prev, err := d.AddDays(-28)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", prev.String())
}

func TestDateString_Ordering(t *testing.T) {
	a := DateString("2025-03-09")
	b := DateString("2025-03-10")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
}

func TestDateString_InMonth(t *testing.T) {
	d := DateString("2025-03-10")

	assert.True(t, d.InMonth(2025, time.March))
	assert.False(t, d.InMonth(2025, time.April))
	assert.False(t, d.InMonth(2024, time.March))
	assert.False(t, DateString("garbage").InMonth(2025, time.March))
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2025-03-10").IsZero())
}
