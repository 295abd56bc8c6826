package logger

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestFormatFieldsSorted(t *testing.T) {
	out := formatFields(Fields{"root": "C#", "count": 18, "ratio": 0.5})
	assert.Equal(t, "{count=18, ratio=0.50, root=C#}", out)
	assert.Equal(t, "", formatFields(nil))
}

func TestLevels(t *testing.T) {
	buf := captureLog(t)

	Info("hello", Fields{"catalog": "chords"})
	Warn("careful", nil)
	Error("broken", errors.New("boom"), Fields{"path": "data/chords.json"})
	Debug("details", Fields{"n": int64(3)})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "[INFO] hello {catalog=chords}", lines[0])
	assert.Equal(t, "[WARN] careful ", lines[1])
	assert.Equal(t, "[ERROR] broken: boom {path=data/chords.json}", lines[2])
	assert.Equal(t, "[DEBUG] details {n=3}", lines[3])
}
