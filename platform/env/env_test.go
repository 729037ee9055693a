package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	assert.Equal(t, "fallback", OrDefault(log, "ENV_TEST_UNSET", "fallback"))

	t.Setenv("ENV_TEST_SET", "value")
	assert.Equal(t, "value", OrDefault(log, "ENV_TEST_SET", "fallback"))
}

func TestDurationDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	assert.Equal(t, 5*time.Second, DurationDefault(log, "ENV_TEST_UNSET", "5s"))

	t.Setenv("ENV_TEST_DURATION", "2m")
	assert.Equal(t, 2*time.Minute, DurationDefault(log, "ENV_TEST_DURATION", "5s"))
}

func TestBoolDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	assert.False(t, BoolDefault(log, "ENV_TEST_UNSET", "f"))

	t.Setenv("ENV_TEST_BOOL", "true")
	assert.True(t, BoolDefault(log, "ENV_TEST_BOOL", "f"))
}

func TestIntDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	assert.Equal(t, 4, IntDefault(log, "ENV_TEST_UNSET", "4"))

	t.Setenv("ENV_TEST_INT", "12")
	assert.Equal(t, 12, IntDefault(log, "ENV_TEST_INT", "4"))
}
