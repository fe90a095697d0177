package field

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{raw: "Name", wantErr: true},
		{raw: "Name!!Id", wantErr: true},
		{raw: "Data!!Json", wantErr: false},
		{raw: "Document!TDocument", wantErr: false},
		{raw: "Documents!TDocument!Array", wantErr: false},
		{raw: "!TDocument", wantErr: false},
		{raw: "", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			err := Validate(MustDecode(tt.raw))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConfiguration)
				assert.Contains(t, err.Error(), "requires a type name")

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCoerceSpecValue_UtcDate(t *testing.T) {
	d := MustDecode("Date!!UtcDate")

	in := time.Date(2024, 3, 15, 10, 30, 45, 0, time.Local)
	out, err := CoerceSpecValue(d, in)
	require.NoError(t, err)

	got, ok := out.(time.Time)
	require.True(t, ok)

	assert.Equal(t, in.Year(), got.Year())
	assert.Equal(t, in.Month(), got.Month())
	assert.Equal(t, in.Day(), got.Day())
	assert.Equal(t, in.Hour(), got.Hour())
	assert.Equal(t, in.Minute(), got.Minute())
	assert.Equal(t, in.Second(), got.Second())
	assert.Equal(t, time.UTC, got.Location())
}

func TestCoerceSpecValue_UtcDateFromOtherZone(t *testing.T) {
	d := MustDecode("Date!!UtcDate")

	zone := time.FixedZone("X", 5*3600)
	in := time.Date(2024, 3, 15, 10, 0, 0, 0, zone)

	out, err := CoerceSpecValue(d, in)
	require.NoError(t, err)

	local := in.Local()
	got := out.(time.Time)
	assert.Equal(t, local.Hour(), got.Hour())
	assert.Equal(t, local.Day(), got.Day())
}

func TestCoerceSpecValue_TypeMismatch(t *testing.T) {
	d := MustDecode("Date!!UtcDate")

	_, err := CoerceSpecValue(d, "2024-03-15")
	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "UtcDate")
}

func TestCoerceSpecValue_PassThrough(t *testing.T) {
	v, err := CoerceSpecValue(MustDecode("Id!!Id"), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	v, err = CoerceSpecValue(MustDecode("Date!!UtcDate"), nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}
