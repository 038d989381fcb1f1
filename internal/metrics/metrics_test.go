package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToggle(t *testing.T) {
	reg := prometheus.NewRegistry()
	Register(reg, "added", "removed")

	before := testutil.ToFloat64(ToggleTotal.WithLabelValues("added"))
	RecordToggle("added", 3*time.Millisecond)
	RecordToggle("added", time.Millisecond)
	assert.Equal(t, before+2, testutil.ToFloat64(ToggleTotal.WithLabelValues("added")))

	expected := `
# HELP oss_contact_toggle_total Counter of contact toggle calls broken out by outcome.
# TYPE oss_contact_toggle_total counter
oss_contact_toggle_total{outcome="added"} 2
oss_contact_toggle_total{outcome="removed"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "oss_contact_toggle_total"))
}
