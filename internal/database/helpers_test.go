package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/talento/internal/models"
)

func inputFor(name, status string) models.CandidateInput {
	return models.CandidateInput{
		Name:            name,
		Status:          status,
		Priority:        models.PriorityAlta,
		ApplicationDate: time.Date(2024, time.April, 2, 0, 0, 0, 0, time.UTC),
		Skills:          []string{"Excel"},
	}
}

func TestTimeNullStringRoundTrip(t *testing.T) {
	ts := time.Date(2024, time.May, 7, 9, 30, 0, 0, time.UTC)

	ns := timeToNullString(&ts)
	require.True(t, ns.Valid)

	back, err := nullStringToTime(ns)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.True(t, ts.Equal(*back))

	none, err := nullStringToTime(timeToNullString(nil))
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = nullStringToTime(sql.NullString{String: "yesterday", Valid: true})
	assert.Error(t, err)
}

func TestTimeNullStringKeepsPrecisionAndZone(t *testing.T) {
	madrid := time.FixedZone("CEST", 2*60*60)
	ts := time.Date(2024, time.June, 3, 10, 15, 30, 123456789, madrid)

	back, err := nullStringToTime(timeToNullString(&ts))
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.True(t, ts.Equal(*back))
	assert.Equal(t, 123456789, back.Nanosecond())

	_, offset := back.Zone()
	assert.Equal(t, 2*60*60, offset)
}

func TestListEncoding(t *testing.T) {
	raw, err := encodeList(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	out, err := decodeList(`["go","sql"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, out)

	_, err = decodeList("{")
	assert.Error(t, err)
}
