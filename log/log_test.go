package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetAndGet(t *testing.T) {
	orig := Get()
	defer Set(orig)

	Set(nil)
	assert.Equal(t, orig, Get())

	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core).Sugar())

	Get().Infow("walk start", "root", "/tmp/x")
	Get().Warnw("list fail", "dir", "a")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "walk start", entries[0].Message)
		assert.Equal(t, "/tmp/x", entries[0].ContextMap()["root"])
		assert.Equal(t, zap.WarnLevel, entries[1].Level)
	}
}
