package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/worklens/worklens-backend-go/internal/config"
	appHTTP "github.com/worklens/worklens-backend-go/internal/handler/http"
	"github.com/worklens/worklens-backend-go/internal/pkg/database"
	"github.com/worklens/worklens-backend-go/internal/pkg/jwt"
	"github.com/worklens/worklens-backend-go/internal/repository/postgresql"
	analyticsService "github.com/worklens/worklens-backend-go/internal/service/analytics"
	authService "github.com/worklens/worklens-backend-go/internal/service/auth"
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

	userRepo := postgresql.NewUserRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	calculator := analyticsService.NewCalculator(cfg.Analytics.ClampProductivity, slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	analyticsSvc := analyticsService.NewAnalyticsService(taskRepo, leaveRepo, projectRepo, calculator, nil)
	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc, cfg.Analytics.TrendMonths)

	router := appHTTP.NewRouter(jwtService, authHandler, analyticsHandler, cfg.App.CORSOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
