package main

import (
	"carebridge-service/internal/app/config"
	"carebridge-service/internal/app/delivery/http/controllers"
	"carebridge-service/internal/app/delivery/http/middlewares"
	"carebridge-service/internal/app/delivery/http/routers"
	"carebridge-service/internal/app/drivers/database"
	"carebridge-service/internal/app/drivers/logger"
	"carebridge-service/internal/app/drivers/messaging"
	"carebridge-service/internal/app/drivers/storage"
	"carebridge-service/internal/app/services/core/caregaps"
	"carebridge-service/internal/app/services/core/migration"
	"carebridge-service/internal/app/services/core/records"
	"carebridge-service/internal/app/services/core/sessions"
	"carebridge-service/internal/app/services/fhir/allergies"
	"carebridge-service/internal/app/services/fhir/bundle"
	"carebridge-service/internal/app/services/fhir/claims"
	"carebridge-service/internal/app/services/fhir/conditions"
	"carebridge-service/internal/app/services/fhir/coverages"
	"carebridge-service/internal/app/services/fhir/immunizations"
	"carebridge-service/internal/app/services/fhir/medicationrequests"
	"carebridge-service/internal/app/services/fhir/observations"
	"carebridge-service/internal/app/services/fhir/patients"
	"carebridge-service/internal/app/services/shared/migrationqueue"
	"carebridge-service/internal/app/services/shared/redis"
	sharedstorage "carebridge-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("invalid timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("waiting for in-flight requests to settle")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	bundleArchive := sharedstorage.NewMinioBundleArchive(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	migrationQueue, err := migrationqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.RabbitMQMigrationQueue)
	if err != nil {
		bootstrap.Logger.Fatal("failed to set up migration events queue", zap.Error(err))
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// External FHIR source clients
	searchClient := bundle.NewSearchClient(bootstrap.InternalConfig.FHIRSource.BaseUrl, bootstrap.Logger)
	patientClient := patients.NewPatientFhirClient(searchClient, bootstrap.Logger)
	conditionClient := conditions.NewConditionFhirClient(searchClient, bootstrap.Logger)
	observationClient := observations.NewObservationFhirClient(searchClient, bootstrap.Logger)
	medicationRequestClient := medicationrequests.NewMedicationRequestFhirClient(searchClient, bootstrap.Logger)
	allergyClient := allergies.NewAllergyIntoleranceFhirClient(searchClient, bootstrap.Logger)
	immunizationClient := immunizations.NewImmunizationFhirClient(searchClient, bootstrap.Logger)
	coverageClient := coverages.NewCoverageFhirClient(searchClient, bootstrap.Logger)
	claimClient := claims.NewClaimFhirClient(searchClient, bootstrap.Logger)

	// Canonical store and session registry
	recordRepository := records.NewRecordMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	sessionRepository := sessions.NewSessionMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Usecases
	sessionUsecase := sessions.NewSessionUsecase(sessionRepository, bootstrap.Logger, bootstrap.InternalConfig)
	careGapUsecase := caregaps.NewCareGapUsecase(recordRepository, redisRepository, bootstrap.Logger, bootstrap.InternalConfig)
	migrationUsecase := migration.NewMigrationUsecase(
		sessionRepository,
		recordRepository,
		patientClient,
		conditionClient,
		observationClient,
		medicationRequestClient,
		allergyClient,
		immunizationClient,
		coverageClient,
		claimClient,
		bundleArchive,
		migrationQueue,
		careGapUsecase,
		bootstrap.Logger,
		bootstrap.InternalConfig,
	)

	// Controllers
	healthController := controllers.NewHealthController(bootstrap.InternalConfig.App.Version)
	sessionController := controllers.NewSessionController(bootstrap.Logger, sessionUsecase)
	migrationController := controllers.NewMigrationController(bootstrap.Logger, migrationUsecase)
	recordController := controllers.NewRecordController(bootstrap.Logger, recordRepository)
	careGapController := controllers.NewCareGapController(bootstrap.Logger, careGapUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		healthController,
		sessionController,
		migrationController,
		recordController,
		careGapController,
	)
}
