package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Infow("config", "env", env, "default", def)
	return def
}

// Must return the env var value, exiting the process when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		log.Fatalw("config", "env", env, "ERROR", "required env var not set")
	}
	return v
}
