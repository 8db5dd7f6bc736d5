package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suchimauz/dentist-timeslots-generator/internal/adapters/in/http"
	"github.com/suchimauz/dentist-timeslots-generator/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/dentist-timeslots-generator/internal/adapters/out/cache"
	"github.com/suchimauz/dentist-timeslots-generator/internal/adapters/out/logger"
	"github.com/suchimauz/dentist-timeslots-generator/internal/adapters/out/mongodb"
	"github.com/suchimauz/dentist-timeslots-generator/internal/config"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/ports/out"
	"github.com/suchimauz/dentist-timeslots-generator/internal/core/services/timeslots_service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewZapLogger(logger.Options{
		Level:    cfg.App.LogLevel,
		JSON:     cfg.IsNotLocal(),
		Location: cfg.Location,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer mainLogger.Sync()
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
		"cacheDriver":     cfg.Cache.Driver,
		"dayStep":         cfg.Slots.DayStep,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация адаптеров
	mongoClient, err := mongodb.NewMongoClient(ctx, cfg, mainLogger)
	if err != nil {
		logger.Error("app.mongodb.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer disconnectCancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.Error("app.mongodb.disconnect_failed", out.LogFields{
				"error": err.Error(),
			})
		}
	}()

	database := mongoClient.Database(cfg.Mongo.Database)
	clinicRepository := mongodb.NewClinicMongoRepository(database, cfg.Mongo.ClinicsCollection, mainLogger)
	dentistRepository := mongodb.NewDentistMongoRepository(database, cfg.Mongo.DentistsCollection, mainLogger)

	// nil, если кэш выключен
	cacheAdapter, err := cache.NewCacheAdapter(ctx, cfg, mainLogger.WithModule("CacheAdapter"))
	if err != nil {
		logger.Error("app.cache.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Инициализация сервиса
	timeSlotsService := timeslots_service.NewTimeSlotsService(
		clinicRepository,
		dentistRepository,
		cacheAdapter,
		mainLogger,
		timeslots_service.NewOptions(cfg),
	)

	// Настройка HTTP сервера
	router := http.NewRouter(cfg, mainLogger)
	controller, err := http.NewTimeSlotsController(timeSlotsService, cfg, mainLogger)
	if err != nil {
		logger.Error("app.http.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	controller.RegisterRoutes(router)
	server := http.NewServer(cfg, router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewTimeSlotsListener(timeSlotsService, cfg, mainLogger)
		if err != nil {
			logger.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		if err := listener.Start(ctx); err != nil {
			logger.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				logger.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("app.http.shutdown_failed", out.LogFields{
			"error": err.Error(),
		})
	}
	cancel()

	// Дополнительное логирование для разработки
	if cfg.IsLocal() {
		logger.Debug("app.config.debug", out.LogFields{
			"config": map[string]interface{}{
				"http": map[string]string{
					"host": cfg.HTTP.Host,
					"port": cfg.HTTP.Port,
				},
				"mongo": map[string]string{
					"database": cfg.Mongo.Database,
					"clinics":  cfg.Mongo.ClinicsCollection,
					"dentists": cfg.Mongo.DentistsCollection,
				},
				"rabbitmq": map[string]interface{}{
					"enabled":         cfg.RabbitMQ.Enabled,
					"requestQueue":    cfg.RabbitMQ.RequestQueue,
					"invalidateQueue": cfg.RabbitMQ.InvalidateQueue,
				},
				"cache": map[string]interface{}{
					"enabled":    cfg.Cache.Enabled,
					"driver":     cfg.Cache.Driver,
					"slots_size": cfg.Cache.SlotsSize,
				},
			},
		})
	}
}
