package datetime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gandistip/renting-things/internal/pkg/datetime"
)

func TestMarshalDropsZoneOffset(t *testing.T) {
	d := datetime.LocalDateTime(time.Date(2024, 1, 11, 9, 5, 30, 0, time.Local))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-11T09:05:30"`, string(b))
}

func TestUnmarshal(t *testing.T) {
	var d datetime.LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-11T09:05:30"`), &d))
	assert.Equal(t, time.Date(2024, 1, 11, 9, 5, 30, 0, time.Local), d.Time())
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		`"2024-01-11"`,
		`"11.01.2024 09:05"`,
		`"2024-01-11T09:05:30Z"`, // offsets are not part of the format
		`42`,
		`""`,
	} {
		var d datetime.LocalDateTime
		assert.Error(t, json.Unmarshal([]byte(raw), &d), "input %s", raw)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := datetime.LocalDateTime(time.Date(2024, 6, 30, 23, 59, 59, 0, time.Local))
	b, err := json.Marshal(orig)
	require.NoError(t, err)

	var back datetime.LocalDateTime
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, orig.Time().Equal(back.Time()))
}
