package reembed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTrackerReportsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 25)

	tracker.Start()
	tracker.Update(10)
	assert.Empty(t, buf.String(), "no report before the interval")

	tracker.Update(25)
	assert.Contains(t, buf.String(), "25/100")

	tracker.Update(60)
	assert.Contains(t, buf.String(), "60/100")
}

func TestProgressTrackerFinish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 50, 100)

	tracker.Start()
	tracker.Increment(20)
	tracker.Finish()

	out := buf.String()
	assert.Contains(t, out, "50/50")
	assert.Contains(t, out, "100.0%")
	assert.True(t, strings.HasSuffix(out, "\n"), "final report ends with a newline")
}

func TestProgressTrackerCapsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Start()
	tracker.Update(99)
	assert.Contains(t, buf.String(), "10/10")
}

func TestProgressTrackerIgnoresBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Update(5)
	tracker.Increment(5)
	tracker.Finish()
	assert.Empty(t, buf.String())
	assert.Zero(t, tracker.Elapsed())
}
