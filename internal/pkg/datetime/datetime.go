package datetime

import (
	"fmt"
	"time"
)

// Layout is the wire format for timestamps: ISO-8601 local date-time
// without a zone offset.
const Layout = "2006-01-02T15:04:05"

// LocalDateTime marshals to and from the zone-less Layout. The rest of the
// codebase works with plain time.Time; this type only lives at the JSON edge.
type LocalDateTime time.Time

func (d LocalDateTime) Time() time.Time {
	return time.Time(d)
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(Layout) + `"`), nil
}

func (d *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date-time %s", s)
	}
	t, err := time.ParseInLocation(Layout, s[1:len(s)-1], time.Local)
	if err != nil {
		return fmt.Errorf("invalid date-time %s: %w", s, err)
	}
	*d = LocalDateTime(t)
	return nil
}

func (d LocalDateTime) IsZero() bool {
	return time.Time(d).IsZero()
}
