package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New(false, &buf)
	log.Debug("hidden")
	log.Warn("also hidden")
	log.Error("shown")
	_ = log.Sync()
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "ERROR")

	buf.Reset()
	log = New(true, &buf)
	log.Debug("walk trace")
	log.Warn("pattern warning")
	_ = log.Sync()
	assert.Contains(t, buf.String(), "walk trace")
	assert.Contains(t, buf.String(), "pattern warning")
	assert.Contains(t, buf.String(), "DEBUG")
}
