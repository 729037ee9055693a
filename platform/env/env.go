package env

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Must returns the result of searching an env var, panics if the env var is empty
func Must(log *zap.SugaredLogger, env string) string {
	val := os.Getenv(env)
	if val == "" {
		log.Panicf("missing required env var %s", env)
	}
	return val
}

// OrDefault returns the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	val := os.Getenv(env)
	if val == "" {
		return def
	}
	return val
}

// DurationDefault return the result of searching an env var, if the env var value is empty, return a default value as time.Duration
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	duration, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as duration: ", err)
	}
	return duration
}

// BoolDefault return the result of searching an env var, if the env var value is empty, return a default value as bool
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	b, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool: ", err)
	}
	return b
}
