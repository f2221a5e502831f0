package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/phonebook-api/app/api/docs"
	"github.com/ribgsilva/phonebook-api/app/api/handlers"
	"github.com/ribgsilva/phonebook-api/app/messaging/consumers/v1/events"
	"github.com/ribgsilva/phonebook-api/business/v1/note"
	"github.com/ribgsilva/phonebook-api/business/v1/person"
	"github.com/ribgsilva/phonebook-api/platform/env"
	"github.com/ribgsilva/phonebook-api/platform/logger"
	"github.com/ribgsilva/phonebook-api/platform/metrics"
	"github.com/ribgsilva/phonebook-api/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub/awssnssqs"
)

// @title Notes and Phonebook API
// @version 1.0
// @description Service to handle notes and phonebook entries.
// @contact.name Gabriel Ribeiro Silva
func main() {
	log, err := logger.New("Phonebook-API")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs
	sys.Configs.Http.Port = env.OrDefault(log, "PORT", "3001")
	sys.Configs.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	sys.Configs.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	sys.Configs.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	sys.Configs.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	sys.Configs.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	sys.Configs.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+sys.Configs.Http.Port)
	sys.Configs.Store.Seed = env.BoolDefault(log, "STORE_SEED", "t")
	sys.Configs.Messaging.TopicName = env.OrDefault(log, "MESSAGING_TOPIC_NAME", "")
	sys.Configs.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	sys.Configs.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	sys.Configs.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "phonebook-api")
	sys.Configs.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	sys.Configs.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	sys.Configs.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	sys.Configs.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
	sys.Configs.Metrics.Enabled = env.BoolDefault(log, "METRICS_ENABLED", "t")
	sys.Configs.Metrics.Namespace = env.OrDefault(log, "METRICS_NAMESPACE", "phonebook")

	// =======================================================================================================
	// Setup static resources

	// logger
	sys.R.Log = log

	// stores
	var noteOpts []note.Option
	var personOpts []person.Option
	if sys.Configs.Store.Seed {
		noteOpts = append(noteOpts, note.WithSeed(note.Seed()...))
		personOpts = append(personOpts, person.WithSeed(person.Seed()...))
	}
	api := handlers.Api{
		Notes:   note.NewStore(noteOpts...),
		Persons: person.NewStore(personOpts...),
	}
	log.Infow("startup", "notes", api.Notes.Count(), "persons", api.Persons.Count())

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(sys.Configs.NewRelic.AppName),
		newrelic.ConfigLicense(sys.Configs.NewRelic.Licence),
		newrelic.ConfigEnabled(sys.Configs.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if err := nrApp.WaitForConnection(sys.Configs.NewRelic.ConnectionTimeout); err != nil {
		return err
	}
	defer nrApp.Shutdown(sys.Configs.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Router configuration

	var m *metrics.Metrics
	if sys.Configs.Metrics.Enabled {
		m = metrics.New(sys.Configs.Metrics.Namespace)
	}
	router := handlers.NewRouter(api, handlers.RouterConfig{
		Log:      log,
		Metrics:  m,
		NewRelic: nrApp,
	})

	docs.SwaggerInfo.Host = sys.Configs.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", sys.Configs.Swagger.Protocol, sys.Configs.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// Messaging configuration

	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()
	consumerErrors := make(chan error, 1)

	if sys.Configs.Messaging.TopicName != "" {
		cfg, err := config.LoadDefaultConfig(context.Background())
		if err != nil {
			return fmt.Errorf("aws config: %w", err)
		}

		subscription := awssnssqs.OpenSubscriptionV2(
			context.Background(),
			sqs.NewFromConfig(cfg),
			sys.Configs.Messaging.TopicName,
			&awssnssqs.SubscriptionOptions{
				Raw:      true,
				WaitTime: sys.Configs.Messaging.WaitTime,
			})
		defer func() {
			stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
			defer stdCancel()

			if err := subscription.Shutdown(stdCtx); err != nil {
				log.Errorf("could not stop subscription gracefully: %s", err)
			}
		}()

		go func() {
			log.Infow("startup", "consumer", sys.Configs.Messaging.TopicName)
			stores := events.Stores{Notes: api.Notes, Persons: api.Persons}
			consumerErrors <- events.Consume(consumerCtx, subscription, sys.Configs.Messaging.MaxWorkers, stores)
		}()
	}

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", sys.Configs.Http.Port),
		Handler:      handlers.Handler(router),
		ReadTimeout:  sys.Configs.Http.ReadTimeout,
		WriteTimeout: sys.Configs.Http.WriteTimeout,
		IdleTimeout:  sys.Configs.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infof("server running on port %s", sys.Configs.Http.Port)
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case err := <-consumerErrors:
		if err != nil {
			return fmt.Errorf("listener error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		consumerCancel()

		ctx, cancel := context.WithTimeout(context.Background(), sys.Configs.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
