package terminal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/globalmarket/backend/internal/notify"
)

func TestLog_PrependOrder(t *testing.T) {
	l := NewLog(0)
	l.Append("first", notify.SeverityInfo)
	l.Append("second", notify.SeveritySuccess)
	l.Append("third", notify.SeverityWarning)

	lines := l.Recent(10)
	assert.Len(t, lines, 3)
	assert.Equal(t, "third", lines[0].Message)
	assert.Equal(t, "second", lines[1].Message)
	assert.Equal(t, "first", lines[2].Message)
	assert.Equal(t, notify.SeverityWarning, lines[0].Severity)
}

func TestLog_RecentTruncates(t *testing.T) {
	l := NewLog(0)
	for i := 0; i < 15; i++ {
		l.Append(fmt.Sprintf("line %d", i), notify.SeverityInfo)
	}

	lines := l.Recent(10)
	assert.Len(t, lines, 10)
	assert.Equal(t, "line 14", lines[0].Message)
	assert.Equal(t, 15, l.Len())
}

func TestLog_RetentionCap(t *testing.T) {
	l := NewLog(5)
	for i := 0; i < 8; i++ {
		l.Append(fmt.Sprintf("line %d", i), notify.SeverityInfo)
	}

	assert.Equal(t, 5, l.Len())
	lines := l.Recent(5)
	assert.Equal(t, "line 7", lines[0].Message)
	assert.Equal(t, "line 3", lines[4].Message)
}

func TestLog_Timestamps(t *testing.T) {
	l := NewLog(0)
	fixed := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	l.Append("stamped", notify.SeverityInfo)
	assert.True(t, l.Recent(1)[0].Timestamp.Equal(fixed))
}
