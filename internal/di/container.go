package di

import (
	"context"
	"fmt"
	"time"

	"github.com/GoArmGo/fyyur/internal/adapter/flash"
	"github.com/GoArmGo/fyyur/internal/adapter/storage/minio"
	"github.com/GoArmGo/fyyur/internal/app"
	"github.com/GoArmGo/fyyur/internal/config"
	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/database/client"
	"github.com/GoArmGo/fyyur/internal/database/postgres"
	"github.com/GoArmGo/fyyur/internal/database/storage"
	"github.com/GoArmGo/fyyur/internal/handler"
	"github.com/GoArmGo/fyyur/internal/logger"
	"github.com/GoArmGo/fyyur/internal/rabbitmq"
	"github.com/GoArmGo/fyyur/internal/render"
	"github.com/GoArmGo/fyyur/internal/usecase"
)

const startupTimeout = 30 * time.Second

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
// При ошибке уже открытые ресурсы закрываются.
func BuildApp() (application *app.App, err error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger, closeLog, err := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Debug:  cfg.Debug,
	})
	if err != nil {
		return nil, err
	}
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat, "debug", cfg.Debug)

	resources := []app.Resource{{Name: "log file", Close: closeLog}}
	defer func() {
		if err != nil {
			for i := len(resources) - 1; i >= 0; i-- {
				_ = resources[i].Close()
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// 2. PostgreSQL: sqlx и gorm поверх одного пула, миграции
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}
	resources = append(resources, app.Resource{Name: "postgres", Close: dbClient.Close})

	// 3. Хранилища
	venueStorage := storage.NewVenueStorage(dbClient.DB, slogger)
	artistStorage := storage.NewArtistStorage(dbClient.DB, slogger)
	showStorage := postgres.NewShowStorage(dbClient.Gorm, slogger)

	// 4. Уведомления: Redis, если задан, иначе память процесса
	var flashes ports.FlashStore
	if cfg.Redis.URL != "" {
		rdb, err := flash.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		resources = append(resources, app.Resource{Name: "redis", Close: rdb.Close})
		flashes = flash.NewRedisStore(rdb, cfg.Redis.FlashTTL, slogger)
		slogger.Info("flash store: redis")
	} else {
		flashes = flash.NewMemoryStore(cfg.Redis.FlashTTL)
		slogger.Info("flash store: memory")
	}

	// 5. RabbitMQ: без него события не публикуются, а worker не запускается
	var (
		publisher ports.ListingPublisher
		consumer  ports.ListingConsumer
	)
	if cfg.RabbitMQ.RabbitMQURL != "" {
		rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
		if err != nil {
			return nil, err
		}
		resources = append(resources, app.Resource{Name: "rabbitmq", Close: func() error {
			rabbitMQClient.Close()
			return nil
		}})
		publisher, consumer = rabbitMQClient, rabbitMQClient
	} else {
		slogger.Info("RABBITMQ_URL is not set, listing events are disabled")
	}

	// 6. S3 / MinIO для загрузки изображений
	var files ports.FileStorage
	if cfg.UploadsEnabled() {
		fileStorage, err := minio.NewMinioClient(ctx, cfg, slogger)
		if err != nil {
			return nil, err
		}
		files = fileStorage
	}

	// 7. Бизнес-логика
	venueUseCase := usecase.NewVenueInteractor(venueStorage, showStorage, publisher, time.Now, slogger)
	artistUseCase := usecase.NewArtistInteractor(artistStorage, showStorage, publisher, time.Now, slogger)
	showUseCase := usecase.NewShowInteractor(showStorage, publisher, time.Now, slogger)

	// 8. HTTP
	pages, err := render.New(slogger)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	h := handler.NewHandler(handler.Deps{
		Venues:  venueUseCase,
		Artists: artistUseCase,
		Shows:   showUseCase,
		Flashes: flashes,
		Files:   files,
		Pages:   pages,
		Logger:  slogger,
	})
	router := handler.NewRouter(h, handler.RouterConfig{
		RequestTimeout:     cfg.RequestTimeout,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, dbClient, slogger)

	// 9. Сборка итогового приложения
	application = app.NewApp(cfg, slogger, router, consumer, resources...)

	slogger.Info("all dependencies initialized",
		"uploads", files != nil,
		"listing_events", publisher != nil,
	)
	return application, nil
}
