package lol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	color.NoColor = true
	NoTimeStamp.Store(true)
	defer NoTimeStamp.Store(false)
	var buf bytes.Buffer
	l, c, e := New(&buf)
	prev := Level.Load()
	defer Level.Store(prev)

	SetLoggers(Warn)
	l.I.Ln("hidden")
	l.W.F("shown %d", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "WRN shown 1")
	require.Contains(t, buf.String(), "log_test.go")

	buf.Reset()
	require.False(t, c.E(nil))
	require.True(t, c.D(errors.New("quiet")))
	require.Empty(t, buf.String())
	require.True(t, c.E(errors.New("loud")))
	require.Contains(t, buf.String(), "ERR loud")

	buf.Reset()
	err := e.E("wrapped: %w", errors.ErrUnsupported)
	require.ErrorIs(t, err, errors.ErrUnsupported)
	require.Contains(t, buf.String(), "wrapped")
}

func TestLnJoinsWithSpaces(t *testing.T) {
	color.NoColor = true
	NoTimeStamp.Store(true)
	defer NoTimeStamp.Store(false)
	var buf bytes.Buffer
	l, _, _ := New(&buf)
	prev := Level.Load()
	defer Level.Store(prev)
	SetLoggers(Info)
	l.I.Ln("a", 1, true)
	require.True(t, strings.HasPrefix(buf.String(), "INF a 1 true "))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestSetLogLevelIgnoresUnknownNames(t *testing.T) {
	prev := Level.Load()
	defer Level.Store(prev)
	SetLogLevel("debug")
	require.EqualValues(t, Debug, Level.Load())
	SetLogLevel("nonsense")
	require.EqualValues(t, Debug, Level.Load())
}
