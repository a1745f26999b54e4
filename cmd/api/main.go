package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/shiftwise/timecard-backend-go/internal/config"
	appHTTP "github.com/shiftwise/timecard-backend-go/internal/handler/http"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/database"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/email"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/events"
	"github.com/shiftwise/timecard-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/timecard-backend-go/internal/repository/postgresql"
	authService "github.com/shiftwise/timecard-backend-go/internal/service/auth"
	notificationService "github.com/shiftwise/timecard-backend-go/internal/service/notification"
	reportService "github.com/shiftwise/timecard-backend-go/internal/service/report"
	timecardService "github.com/shiftwise/timecard-backend-go/internal/service/timecard"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	timecardRepo := postgresql.NewTimecardRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	mailer, err := email.NewMailer(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize mailer:", err)
	}

	bus := events.NewBus(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	timecardSvc := timecardService.NewTimecardService(timecardRepo, cfg.Rules(), bus)
	reportSvc := reportService.NewReportService(timecardRepo, cfg.Rules())
	notificationSvc := notificationService.NewNotificationService(notificationRepo, employeeRepo, mailer)
	notificationService.RegisterHandlers(bus, notificationSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	timecardHandler := appHTTP.NewTimecardHandler(timecardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		timecardHandler,
		reportHandler,
		employeeHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
