package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeRedactsSecrets(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.Info("signed in", "email", "a@b.edu", "session_token", "abc.def.ghi", "Password", "hunter2")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "a@b.edu", fields["email"])
		assert.Equal(t, "[REDACTED]", fields["session_token"])
		assert.Equal(t, "[REDACTED]", fields["Password"])
	}
}

func TestSanitizeKeepsDanglingKey(t *testing.T) {
	out := sanitizeKVs([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}
