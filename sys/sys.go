package sys

import (
	"time"

	"go.uber.org/zap"
)

// Configs contains all the configs gathered from env vars
var Configs struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Store struct {
		Seed bool
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
	Metrics struct {
		Enabled   bool
		Namespace string
	}
}

// Resources are the process wide resources. Stores are not here, they are handed to whoever serves them
type Resources struct {
	Log *zap.SugaredLogger
}

// R holds static resources across the project, the logger discards until main replaces it
var R = Resources{
	Log: zap.NewNop().Sugar(),
}
