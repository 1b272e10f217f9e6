package format

import "time"

// Date is the stable display structure for a point in time derived from a
// unix timestamp.
type Date struct {
	Value          time.Time `json:"value"`
	Timestamp      int64     `json:"timestamp"`
	Formatted      string    `json:"formatted"`
	FormattedShort string    `json:"formatted_short"`
	FormattedLocal string    `json:"formatted_local"`
	Full           string    `json:"full"`
}

// FromUnix converts unix seconds into a display date. All canonical fields
// are rendered in UTC; FormattedLocal uses the process time zone.
func FromUnix(sec int64) Date {
	t := time.Unix(sec, 0).UTC()
	return Date{
		Value:          t,
		Timestamp:      sec,
		Formatted:      t.Format("Jan 2, 2006 15:04 MST"),
		FormattedShort: t.Format("Jan 2, 2006"),
		FormattedLocal: time.Unix(sec, 0).Format("Jan 2, 2006 15:04 (MST)"),
		Full:           t.Format(time.RFC3339),
	}
}

// EpochDate is the date shown when no activity exists yet.
func EpochDate() Date { return FromUnix(0) }
