package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/gcett/studentdir/internal/app/controllers"
	appMigrations "github.com/gcett/studentdir/internal/app/migrations"
	appRepos "github.com/gcett/studentdir/internal/app/repositories"
	appRoutes "github.com/gcett/studentdir/internal/app/routes"
	appServices "github.com/gcett/studentdir/internal/app/services"
	"github.com/gcett/studentdir/internal/config"
	"github.com/gcett/studentdir/internal/db"
	appMiddleware "github.com/gcett/studentdir/internal/middleware"
	pkgAuth "github.com/gcett/studentdir/internal/pkg/auth"
	"github.com/gcett/studentdir/internal/pkg/email"
	"github.com/gcett/studentdir/internal/pkg/filestorage"
	"github.com/gcett/studentdir/internal/pkg/helpers"
	"github.com/gcett/studentdir/internal/pkg/logger"
	"github.com/gcett/studentdir/internal/pkg/otp"
	"github.com/gcett/studentdir/internal/seed"
)

// otpSweepInterval is how often expired codes are dropped
const otpSweepInterval = time.Minute

// Stores holds the open datastore connections
type Stores struct {
	Main     *db.MongoDB
	Notices  *db.MongoDB
	Postgres *db.PostgresDB
}

// Close releases every open connection
func (s *Stores) Close(ctx context.Context) {
	// The notices store may share the main client
	if s.Notices != nil && (s.Main == nil || s.Notices.Client != s.Main.Client) {
		_ = s.Notices.Close(ctx)
	}
	if s.Main != nil {
		_ = s.Main.Close(ctx)
	}
	if s.Postgres != nil {
		s.Postgres.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentRepository    appRepos.StudentRepository
	NoticeRepository     appRepos.NoticeRepository
	QuestionRepository   appRepos.QuestionRepository
	EntrantRepository    appRepos.EntrantRepository
	SubmissionRepository appRepos.SubmissionRepository

	StudentService    appServices.StudentService
	InterestService   appServices.InterestService
	NoticeService     appServices.NoticeService
	QuestionService   appServices.QuestionService
	SubmissionService appServices.SubmissionService
	AdminAuthService  appServices.AdminAuthService
	HealthService     appServices.HealthService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware

	JWTService   *pkgAuth.JWTService
	OTPStore     *otp.MemoryStore
	Notifier     *appServices.AsyncNotifier
	Mailer       email.Mailer
	PhotoStorage filestorage.FileStorage
	FileStorage  *filestorage.LocalStorage
	Logger       zerolog.Logger
}

// Close stops background work owned by the dependencies, waiting for
// pending notifications until ctx is done
func (d *Dependencies) Close(ctx context.Context) error {
	if d.OTPStore != nil {
		d.OTPStore.Close()
	}
	if d.Notifier != nil {
		return d.Notifier.Shutdown(ctx)
	}
	return nil
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabases connects both document stores and Postgres, then applies
// migrations and indexes.
func SetupDatabases(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Stores, error) {
	stores := &Stores{}
	timeout := helpers.ParseDuration(cfg.Mongo.Timeout, 10*time.Second)

	lgr.Info().Msg("Establishing MongoDB connection...")
	mainDB, err := db.NewMongoDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database, timeout)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, err
	}
	stores.Main = mainDB

	noticesURI, noticesDB := cfg.NoticesMongo()
	if noticesURI == cfg.Mongo.URI {
		stores.Notices = &db.MongoDB{Client: mainDB.Client, Database: mainDB.Client.Database(noticesDB)}
	} else {
		stores.Notices, err = db.NewMongoDB(ctx, noticesURI, noticesDB, timeout)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to notices MongoDB")
			stores.Close(ctx)
			return nil, err
		}
	}

	lgr.Info().Msg("Establishing database connection...")
	stores.Postgres, err = db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		stores.Close(ctx)
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(stores.Postgres, lgr).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		stores.Close(ctx)
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return stores, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, stores *Stores, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	students := appRepos.NewStudentRepository(stores.Main.Database)
	entrants := appRepos.NewEntrantRepository(stores.Main.Database)
	deps.StudentRepository = students
	deps.EntrantRepository = entrants
	deps.NoticeRepository = appRepos.NewNoticeRepository(stores.Notices.Database)
	deps.QuestionRepository = appRepos.NewQuestionRepository(stores.Main.Database)
	deps.SubmissionRepository = appRepos.NewSubmissionRepository(stores.Postgres.Pool)

	if err := students.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure student indexes: %w", err)
	}
	if err := entrants.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure entrant indexes: %w", err)
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, deps.QuestionRepository, deps.NoticeRepository, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	// Files are served by the static /uploads route
	var err error
	fileStorageBaseURL := strings.TrimRight(cfg.Server.PublicBaseURL, "/") + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	cloudinaryConfig := filestorage.CloudinaryConfig{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
	}
	deps.PhotoStorage = deps.FileStorage
	if cloudinaryConfig.Enabled() {
		cld, err := filestorage.NewCloudinaryStorage(cloudinaryConfig, lgr)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cloudinary storage: %w", err)
		}
		deps.PhotoStorage = cld
		lgr.Info().Msg("Profile photos are stored in Cloudinary")
	}

	deps.Mailer = email.NewSMTPMailer(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr.With().Str("component", "mailer").Logger())

	deps.Notifier = appServices.NewAsyncNotifier(
		helpers.ParseDuration(cfg.Notify.SendTimeout, appServices.DefaultSendTimeout),
		lgr.With().Str("component", "notifier").Logger(),
	)
	deps.OTPStore = otp.NewMemoryStore(helpers.ParseDuration(cfg.OTP.TTL, otp.DefaultTTL), cfg.OTP.Length, otpSweepInterval)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:     cfg.JWT.Secret,
		AdminTokenExp: helpers.ParseDuration(cfg.JWT.AdminTokenExpiration, 24*time.Hour),
		TokenIssuer:   cfg.JWT.Issuer,
	})

	audience := appServices.NewAudience(lgr,
		appServices.AudienceSource{Name: "students", Source: deps.StudentRepository},
		appServices.AudienceSource{Name: "skill_test_entrants", Source: deps.EntrantRepository},
		appServices.AudienceSource{Name: "submissions", Source: deps.SubmissionRepository},
	)

	deps.StudentService = appServices.NewStudentService(deps.StudentRepository, deps.PhotoStorage,
		lgr.With().Str("service", "student").Logger())
	deps.InterestService = appServices.NewInterestService(deps.StudentRepository, deps.OTPStore, deps.Mailer, deps.Notifier,
		lgr.With().Str("service", "interest").Logger())
	deps.NoticeService = appServices.NewNoticeService(deps.NoticeRepository, audience, deps.Mailer, deps.Notifier,
		lgr.With().Str("service", "notice").Logger())
	deps.QuestionService = appServices.NewQuestionService(deps.QuestionRepository,
		lgr.With().Str("service", "question").Logger())
	deps.SubmissionService = appServices.NewSubmissionService(deps.SubmissionRepository, deps.EntrantRepository,
		deps.FileStorage, deps.Mailer, deps.Notifier,
		appServices.SubmissionConfig{OperatorEmail: cfg.Notify.OperatorEmail},
		lgr.With().Str("service", "submission").Logger())
	deps.AdminAuthService = appServices.NewAdminAuthService(pkgAuth.Credentials{
		Email:        cfg.Admin.Email,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, deps.JWTService, lgr.With().Str("service", "admin_auth").Logger())
	deps.HealthService = appServices.NewHealthService(map[string]appServices.Pinger{
		"mongo":         stores.Main,
		"mongo_notices": stores.Notices,
		"postgres":      stores.Postgres,
	}, deps.StudentRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AdminAuthService)

	deps.Controllers = appRoutes.Controllers{
		Student:    appControllers.NewStudentController(deps.StudentService),
		Interest:   appControllers.NewInterestController(deps.InterestService),
		Notice:     appControllers.NewNoticeController(deps.NoticeService),
		Question:   appControllers.NewQuestionController(deps.QuestionService),
		Submission: appControllers.NewSubmissionController(deps.SubmissionService),
		AdminAuth: appControllers.NewAdminAuthController(deps.AdminAuthService, appControllers.CookieConfig{
			Secure: cfg.Server.CookieSecure,
		}, lgr),
		Health: appControllers.NewHealthController(deps.HealthService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(lgr),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)
	// Profile photos are capped at 5 MiB; leave room for the other fields
	router.MaxMultipartMemory = 8 << 20

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.Static("/uploads", cfg.Server.StoragePath)
	lgr.Info().Str("path", cfg.Server.StoragePath).Msg("Static file serving configured for uploads directory")

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
