// Creates a superuser account from the command line, the counterpart of the
// interactive admin bootstrap most deployments need exactly once.
//
// Usage: go run scripts/create_admin/main.go -username admin -password ... \
//	-email admin@example.com -fullname "Site Admin" -birthday 1990-01-01 -sex M
package main

import (
	"flag"
	"log"
	"time"

	"github.com/binehq/bine-server/internal/config"
	"github.com/binehq/bine-server/internal/database"
	"github.com/binehq/bine-server/internal/repositories"
	"github.com/binehq/bine-server/internal/services"
	"github.com/binehq/bine-server/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	email := flag.String("email", "", "admin email")
	fullname := flag.String("fullname", "", "admin full name")
	birthday := flag.String("birthday", "", "admin birthday (YYYY-MM-DD)")
	sex := flag.String("sex", "", "admin sex (M or F)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger.Init()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations: ", err)
	}

	parsedBirthday, err := time.Parse("2006-01-02", *birthday)
	if err != nil {
		log.Fatal("birthday must be YYYY-MM-DD")
	}

	userService := services.NewUserService(repositories.NewUserRepository(db), cfg.JWTSecret)

	user, err := userService.RegisterSuperuser(&services.RegisterInput{
		Username: *username,
		Password: *password,
		Email:    *email,
		FullName: *fullname,
		Birthday: parsedBirthday,
		Sex:      *sex,
	})
	if err != nil {
		log.Fatal("failed to create superuser: ", err)
	}

	log.Printf("superuser %q created with id %d", user.Username, user.ID)
}
