package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/storefront-site-backend/api"
	"github.com/rpupo63/storefront-site-backend/config"
	"github.com/rpupo63/storefront-site-backend/database"
	"github.com/rpupo63/storefront-site-backend/logging"
	"github.com/rpupo63/storefront-site-backend/models"
	"github.com/rpupo63/storefront-site-backend/services"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	closer := logging.Setup(c)
	defer closer.Close()

	log.Info().Msg("Initializing app...")

	db, err := openDatabase(getEnv("DB_TYPE", "supa"))
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	// If generating models, run generation and exit
	if strings.ToLower(os.Getenv("GENERATE_MODELS")) == "true" {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db); err != nil {
			log.Fatal().Err(err).Msg("Model generation failed")
		}
		return
	}

	// If generating column mismatch report, run report and exit
	if os.Getenv("GENERATE_COLUMN_REPORT") == "true" {
		log.Info().Msg("Generating column mismatch report...")
		if _, err := models.GenerateColumnMismatchReport(db); err != nil {
			log.Fatal().Err(err).Msg("Column report failed")
		}
		return
	}

	if config.GetBool(c, "AUTO_MIGRATE", false) {
		if err := models.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("Error migrating models")
		}
	}

	currentDB := database.New(db)

	pool, err := ants.NewPool(config.GetInt(c, "CAPTURE_POOL_SIZE", 32), ants.WithNonblocking(true))
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating capture pool")
	}

	mailer, err := services.NewMailerFromConfig(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring mailer")
	}

	var scheduler *services.Scheduler
	if interval := config.GetDuration(c, "LEAD_DIGEST_INTERVAL_HOURS", time.Hour, 0); interval > 0 {
		digest := services.NewLeadDigestJob(
			currentDB.ProjectLeadRepo(),
			mailer,
			config.GetList(c, "SALES_NOTIFICATION_EMAILS"),
			interval,
			config.GetString(c, "SITE_NAME", "Storefront"),
		)
		scheduler, err = services.NewScheduler(digest)
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating scheduler")
		}
		scheduler.Start()
	}

	errChannel := make(chan error, 2)

	server, err := api.NewServer(currentDB, api.WithSubmitter(pool), api.WithMailer(mailer))
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
	if scheduler != nil {
		scheduler.Stop()
	}
	if err := pool.ReleaseTimeout(10 * time.Second); err != nil {
		log.Warn().Err(err).Msg("capture pool did not drain in time")
	}
}

// openDatabase connects to the backend named by DB_TYPE: supa, postgres or sqlite
func openDatabase(dbType string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		PrepareStmt: false,
		Logger: logger.New(
			stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
			logger.Config{
				SlowThreshold:             10 * time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	}

	log.Info().Str("dbType", dbType).Msg("Connecting to database")

	switch dbType {
	case "supa":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			getEnv("SUPABASE_DB_HOST", ""),
			getEnv("SUPABASE_DB_USER", ""),
			getEnv("SUPABASE_DB_PASSWORD", ""),
			getEnv("SUPABASE_DB_NAME", ""),
			getEnv("SUPABASE_DB_PORT", "5432"),
		)
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), gormConfig)
	case "postgres":
		dsn := getEnv("DATABASE_URL", "")
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for DB_TYPE=postgres")
		}
		return gorm.Open(postgres.Open(dsn), gormConfig)
	case "sqlite":
		return gorm.Open(sqlite.Open(getEnv("SQLITE_PATH", "storefront.db")), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
