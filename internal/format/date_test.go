package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromUnix(t *testing.T) {
	d := FromUnix(1546300800) // 2019-01-01T00:00:00Z

	assert.Equal(t, int64(1546300800), d.Timestamp)
	assert.Equal(t, time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), d.Value)
	assert.Equal(t, "Jan 1, 2019 00:00 UTC", d.Formatted)
	assert.Equal(t, "Jan 1, 2019", d.FormattedShort)
	assert.Equal(t, "2019-01-01T00:00:00Z", d.Full)
}

func TestEpochDate(t *testing.T) {
	d := EpochDate()
	assert.Equal(t, int64(0), d.Timestamp)
	assert.Equal(t, "Jan 1, 1970", d.FormattedShort)
}
