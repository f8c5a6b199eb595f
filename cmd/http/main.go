package main

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/delivery/http/middlewares"
	"clinicdesk-service/internal/app/delivery/http/routers"
	"clinicdesk-service/internal/app/drivers/database"
	"clinicdesk-service/internal/app/drivers/logger"
	"clinicdesk-service/internal/app/drivers/messaging"
	"clinicdesk-service/internal/app/drivers/storage"
	"clinicdesk-service/internal/app/services/core/appointments"
	"clinicdesk-service/internal/app/services/core/dashboard"
	"clinicdesk-service/internal/app/services/core/doctors"
	"clinicdesk-service/internal/app/services/core/enquiries"
	"clinicdesk-service/internal/app/services/core/schedules"
	"clinicdesk-service/internal/app/services/core/slots"
	"clinicdesk-service/internal/app/services/shared/jwtmanager"
	"clinicdesk-service/internal/app/services/shared/notifier"
	"clinicdesk-service/internal/app/services/shared/redis"
	sharedstorage "clinicdesk-service/internal/app/services/shared/storage"
	upstreamappointments "clinicdesk-service/internal/app/services/upstream/appointments"
	"clinicdesk-service/internal/app/services/upstream/backendrest"
	upstreamdoctors "clinicdesk-service/internal/app/services/upstream/doctors"
	upstreamenquiries "clinicdesk-service/internal/app/services/upstream/enquiries"
	upstreamschedules "clinicdesk-service/internal/app/services/upstream/schedules"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig, bootLog)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig, bootLog)
	minioClient := storage.NewMinio(driverConfig, bootLog)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, minioClient, bootLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Printf("Error closing drivers: %v", err)
	}

	bootLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, minioClient *minio.Client, bootLog *logrus.Logger) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	objectStorage := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig)
	queueNotifier, err := notifier.NewQueueNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.NotificationQueue)
	if err != nil {
		bootLog.Fatalf("Error preparing notification queue: %v", err)
	}
	jwtManager := jwtmanager.NewJWTManager(bootstrap.InternalConfig.JWT.Secret, 24*time.Hour)

	// Upstream backend clients
	restClient := backendrest.NewClient(
		bootstrap.InternalConfig.Backend.BaseUrl,
		time.Second*time.Duration(bootstrap.InternalConfig.Backend.RequestTimeoutIn),
	)
	doctorBackendClient := upstreamdoctors.NewDoctorBackendClient(restClient, bootstrap.Logger)
	appointmentBackendClient := upstreamappointments.NewAppointmentBackendClient(restClient, bootstrap.Logger)
	scheduleBackendClient := upstreamschedules.NewScheduleBackendClient(restClient, bootstrap.Logger)
	enquiryBackendClient := upstreamenquiries.NewEnquiryBackendClient(restClient, bootstrap.Logger)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, bootstrap.InternalConfig)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(doctorBackendClient, redisRepository, objectStorage, bootstrap.InternalConfig, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Slot
	slotUsecase := slots.NewSlotUsecase(scheduleBackendClient, appointmentBackendClient)
	slotController := slots.NewSlotController(bootstrap.Logger, slotUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentBackendClient, doctorUsecase, queueNotifier, bootstrap.InternalConfig, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Schedule
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleBackendClient, bootstrap.Logger)
	scheduleController := schedules.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	// Enquiry
	enquiryUsecase := enquiries.NewEnquiryUsecase(enquiryBackendClient, queueNotifier, bootstrap.Logger)
	enquiryController := enquiries.NewEnquiryController(bootstrap.Logger, enquiryUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(doctorUsecase, appointmentBackendClient, enquiryBackendClient)
	dashboardController := dashboard.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		doctorController,
		slotController,
		appointmentController,
		scheduleController,
		enquiryController,
		dashboardController,
	)
}
