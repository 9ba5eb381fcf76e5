package main

import (
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ridelabs/drivescore/internal/pkg/config"
	"github.com/ridelabs/drivescore/internal/pkg/database"
	"github.com/ridelabs/drivescore/internal/pkg/logger"
	nsqpkg "github.com/ridelabs/drivescore/internal/pkg/nsq"
	"github.com/ridelabs/drivescore/internal/pkg/server"
	"github.com/ridelabs/drivescore/services/roadclass"
	roadclassgw "github.com/ridelabs/drivescore/services/roadclass/gateway"
	roadclassrepo "github.com/ridelabs/drivescore/services/roadclass/repository"
	roadclassuc "github.com/ridelabs/drivescore/services/roadclass/usecase"
	"github.com/ridelabs/drivescore/services/scoring"
	scoringgw "github.com/ridelabs/drivescore/services/scoring/gateway"
	"github.com/ridelabs/drivescore/services/scoring/handler"
	scoringrepo "github.com/ridelabs/drivescore/services/scoring/repository"
	scoringuc "github.com/ridelabs/drivescore/services/scoring/usecase"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to the config file")
	flag.Parse()

	configs, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	// Redis backs the classification cache (optionally) and the trail
	// repository
	var redisClient *database.RedisClient
	needRedis := configs.Roads.CacheBackend == "redis"
	redisClient, err = database.NewRedisClient(configs.Redis)
	if err != nil {
		if needRedis {
			logger.Fatal("Failed to connect to Redis", logger.ErrorField(err))
		}
		logger.Warn("Redis unavailable, track trails disabled", logger.ErrorField(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	cacheTTL := time.Duration(configs.Roads.CacheTTLMs) * time.Millisecond
	var cache roadclass.ClassificationCache
	if configs.Roads.CacheBackend == "redis" {
		cache = roadclassrepo.NewRedisCache(redisClient, cacheTTL)
	} else {
		cache = roadclassrepo.NewMemoryCache(configs.Roads.CacheCapacity, cacheTTL)
	}

	mapView := roadclassuc.NewConfigMapView(configs.Roads)
	roadsGW := roadclassgw.NewRoadsClient(configs.Roads)
	classifier := roadclassuc.NewRoadClassifier(roadsGW, cache, mapView, configs.Roads)

	var events scoring.ScoreEventsGW
	if configs.NSQ.Enabled {
		producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			logger.Fatal("Failed to connect to NSQ", logger.ErrorField(err))
		}
		defer producer.Stop()
		events = scoringgw.NewScoreEventsGW(producer)
	}

	var tracks scoring.TrackRepo
	if redisClient != nil {
		trackTTL := time.Duration(configs.Scoring.TrackTTLHours) * time.Hour
		tracks = scoringrepo.NewTrackRepository(redisClient, trackTTL)
	}

	sessionManager := scoringuc.NewSessionManager(classifier, events, tracks, scoring.NopStatusSink{}, configs.Scoring)
	defer sessionManager.Stop()

	e := echo.New()
	e.HideBanner = true

	httpHandler := handler.NewHTTPHandler(sessionManager, classifier, mapView, configs)
	httpHandler.RegisterRoutes(e)

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, configs.Server.Port, shutdownTimeout)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error", logger.ErrorField(err))
	}
}
