// Command seed populates a local database with a demo account and a
// year of generated work-log records.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/worklens/worklens-backend-go/internal/config"
	"github.com/worklens/worklens-backend-go/internal/domain/user"
	"github.com/worklens/worklens-backend-go/internal/fixtures"
	"github.com/worklens/worklens-backend-go/internal/pkg/database"
	"github.com/worklens/worklens-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "demo@worklens.local", "email for the demo account")
	password := flag.String("password", "demo-password", "password for the demo account")
	seed := flag.Int64("seed", 1, "seed for the generated records")
	year := flag.Int("year", time.Now().Year(), "year the records are spread across")
	taskCount := flag.Int("tasks", 120, "number of tasks to generate")
	leaveCount := flag.Int("leaves", 12, "number of leave days to generate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Error hashing password:", err)
		os.Exit(1)
	}
	hashed := string(hash)

	demoUser, err := userRepo.Create(ctx, user.User{Email: *email, PasswordHash: &hashed})
	if err != nil {
		fmt.Println("Error creating demo user:", err)
		os.Exit(1)
	}

	projects := fixtures.GetDefaultProjects()
	for i, p := range projects {
		created, err := projectRepo.Create(ctx, demoUser.ID, p)
		if err != nil {
			fmt.Println("Error creating project:", err)
			os.Exit(1)
		}
		projects[i] = created
	}

	for _, t := range fixtures.GenerateDemoTasks(*seed, *taskCount, *year, projects) {
		if _, err := taskRepo.Create(ctx, demoUser.ID, t); err != nil {
			fmt.Println("Error creating task:", err)
			os.Exit(1)
		}
	}

	for _, l := range fixtures.GenerateDemoLeaves(*seed, *leaveCount, *year) {
		if _, err := leaveRepo.Create(ctx, demoUser.ID, l); err != nil {
			fmt.Println("Error creating leave:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %s with %d projects, %d tasks, %d leaves for %d\n",
		*email, len(projects), *taskCount, *leaveCount, *year)
}
