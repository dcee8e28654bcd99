package cliutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Passed: %d/%d\n", 3, 4)
	assert.Equal(t, "Passed: 3/4\n", buf.String())
}

func TestWritefFailedWriteDoesNotPanic(t *testing.T) {
	Writef(failingWriter{}, "ignored %d", 1)
}

func TestRule(t *testing.T) {
	var buf bytes.Buffer
	Rule(&buf, 5)
	assert.Equal(t, "=====\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
