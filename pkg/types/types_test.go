package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_ScanPostgresTime(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("09:30:00")))
	assert.Equal(t, TimeString("09:30"), ts)
}

func TestTimeString_ScanRejectsGarbage(t *testing.T) {
	var ts TimeString
	err := ts.Scan("9h30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	end, err := MustTimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), end)

	_, err = MustTimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, MustTimeString("09:00").IsBefore("10:15"))
	assert.False(t, MustTimeString("10:15").IsBefore("10:15"))
	assert.True(t, MustTimeString("18:00").IsAfter("07:45"))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	at, err := MustTimeString("14:45").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 14, 45, 0, 0, time.UTC), at)
}

func TestJSONList_NullAndEmpty(t *testing.T) {
	var l JSONList[string]
	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)

	v, err := JSONList[string]{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestJSONList_KeepsOrder(t *testing.T) {
	var l JSONList[string]
	require.NoError(t, l.Scan(`["tripod","softbox","backdrop"]`))
	assert.Equal(t, JSONList[string]{"tripod", "softbox", "backdrop"}, l)
}

func TestParseJSONList_MalformedIsAbsent(t *testing.T) {
	assert.Nil(t, ParseJSONList[string]("{not json"))
	assert.Equal(t, JSONList[int]{1, 2}, ParseJSONList[int]("[1,2]"))
}

func TestJSONMap_Scan(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan([]byte(`{"outfits":2,"pets":true}`)))
	assert.Equal(t, float64(2), m["outfits"])
	assert.Equal(t, true, m["pets"])

	assert.ErrorIs(t, m.Scan(42), ErrInvalidJSON)
}
