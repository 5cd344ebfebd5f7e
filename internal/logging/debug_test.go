package logging

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("TASKS_DEBUG", "")
	assert.False(t, DebugEnabled())

	t.Setenv("TASKS_DEBUG", "1")
	assert.True(t, DebugEnabled())

	t.Setenv("TASKS_DEBUG", "anything")
	assert.True(t, DebugEnabled())
}

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what was written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestDebugf(t *testing.T) {
	t.Setenv("TASKS_DEBUG", "1")
	out := captureStdout(t, func() {
		Debugf("using %s store at %s\n", "json", "tasks.json")
	})
	assert.Equal(t, "using json store at tasks.json\n", out)

	t.Setenv("TASKS_DEBUG", "")
	out = captureStdout(t, func() {
		Debugf("should not appear %d\n", 42)
	})
	assert.Empty(t, out)
}

func TestDebugln(t *testing.T) {
	t.Setenv("TASKS_DEBUG", "1")
	out := captureStdout(t, func() {
		Debugln("debug", "message")
	})
	assert.Equal(t, "debug message\n", out)

	t.Setenv("TASKS_DEBUG", "")
	out = captureStdout(t, func() {
		Debugln("hidden")
	})
	assert.Empty(t, out)
}
