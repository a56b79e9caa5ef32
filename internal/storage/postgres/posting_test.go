package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intern_scout/testdata/utils"
)

func TestDeadlineDate_Sentinels(t *testing.T) {
	for _, raw := range []string{"", "  ", "none", "NaN", "N/A", "n/a"} {
		assert.Nil(t, deadlineDate(utils.Ptr(raw)), "raw=%q", raw)
	}
	assert.Nil(t, deadlineDate(nil))
}

func TestDeadlineDate_Unparseable(t *testing.T) {
	assert.Nil(t, deadlineDate(utils.Ptr("unknown")))
	assert.Nil(t, deadlineDate(utils.Ptr("see attached PDF")))
}

func TestDeadlineDate_ParsesCommonFormats(t *testing.T) {
	for _, raw := range []string{"2026-09-15", "15 Sep 2026", "09/15/2026", "September 15, 2026"} {
		got := deadlineDate(utils.Ptr(raw))
		require.NotNil(t, got, "raw=%q", raw)
		assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), *got, "raw=%q", raw)
	}
}
