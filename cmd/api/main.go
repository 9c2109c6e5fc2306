package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/config"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	appHTTP "github.com/caredesk/homecare-backend-go/internal/handler/http"
	"github.com/caredesk/homecare-backend-go/internal/pkg/alerts"
	"github.com/caredesk/homecare-backend-go/internal/pkg/calendar"
	"github.com/caredesk/homecare-backend-go/internal/pkg/cron"
	"github.com/caredesk/homecare-backend-go/internal/pkg/database"
	"github.com/caredesk/homecare-backend-go/internal/pkg/jwt"
	"github.com/caredesk/homecare-backend-go/internal/repository/postgresql"
	assignmentService "github.com/caredesk/homecare-backend-go/internal/service/assignment"
	authService "github.com/caredesk/homecare-backend-go/internal/service/auth"
	clientService "github.com/caredesk/homecare-backend-go/internal/service/client"
	holidayService "github.com/caredesk/homecare-backend-go/internal/service/holiday"
	planningService "github.com/caredesk/homecare-backend-go/internal/service/planning"
	workerService "github.com/caredesk/homecare-backend-go/internal/service/worker"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	snapshotRepo := postgresql.NewBalanceSnapshotRepository(db)

	// Holiday lookups go to the configured source, fronted by a redis cache.
	var calendarProvider holiday.CalendarProvider
	switch cfg.Calendar.Source {
	case "http":
		calendarProvider = calendar.NewHTTPProvider(cfg.Calendar)
	default:
		calendarProvider = holidayRepo
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	holidayTTL, err := time.ParseDuration(cfg.Redis.HolidayTTL)
	if err != nil {
		log.Fatal("Invalid REDIS_HOLIDAY_TTL: ", err)
	}
	calendarProvider = calendar.NewCachedProvider(calendarProvider, rdb, holidayTTL)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	assignmentSvc := assignmentService.NewAssignmentService(db, assignmentRepo, clientRepo, workerRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	planningSvc := planningService.NewPlanningService(assignmentRepo, clientRepo, workerRepo, snapshotRepo, calendarProvider)

	// Unresolved-service alerts go through rabbitmq to the alerts worker.
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		log.Fatal("Failed to connect to rabbitmq: ", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open rabbitmq channel: ", err)
	}
	defer ch.Close()

	publisher, err := alerts.NewAMQPPublisher(ch, cfg.RabbitMQ.AlertQueue, time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)
	if err != nil {
		log.Fatal("Failed to create alert publisher: ", err)
	}

	scheduler := cron.NewScheduler()
	balanceJobs := cron.NewBalanceJobs(clientRepo, planningSvc, snapshotRepo, publisher)
	balanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Assignment: appHTTP.NewAssignmentHandler(assignmentSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Planning:   appHTTP.NewPlanningHandler(planningSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
