package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/95Seo/gachicoding/internal/config"
	"github.com/95Seo/gachicoding/internal/handler"
	"github.com/95Seo/gachicoding/internal/middleware"
	"github.com/95Seo/gachicoding/internal/migration"
	"github.com/95Seo/gachicoding/internal/repository"
	"github.com/95Seo/gachicoding/internal/routes"
	"github.com/95Seo/gachicoding/internal/service"
	"github.com/95Seo/gachicoding/pkg/auth"
	pkgcache "github.com/95Seo/gachicoding/pkg/cache"
	"github.com/95Seo/gachicoding/pkg/jwt"
	pkglogger "github.com/95Seo/gachicoding/pkg/logger"
	"github.com/95Seo/gachicoding/pkg/mailer"
	pkgredis "github.com/95Seo/gachicoding/pkg/redis"
	pkgstorage "github.com/95Seo/gachicoding/pkg/storage"
)

// @title           Gachicoding API
// @version         1.0
// @description     Community Q&A backend: notices, questions, answers and comments
//
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to MySQL")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional; without it list caching degrades to direct queries
	var cacheService *pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, redisErr := pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if redisErr != nil {
			pkglogger.Warn("Redis unavailable: %v (continuing without cache)", redisErr)
		} else {
			cacheService = pkgcache.NewService(redisClient)
			pkglogger.Info("Connected to Redis")
		}
	}

	var mail mailer.Mailer
	if cfg.SMTP.Enabled {
		mail = mailer.New(mailer.Config{
			Host:       cfg.SMTP.Host,
			Port:       cfg.SMTP.Port,
			Username:   cfg.SMTP.Username,
			Password:   cfg.SMTP.Password,
			SenderName: cfg.SMTP.SenderName,
		})
		pkglogger.Info("SMTP mailer enabled (%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	}

	var store pkgstorage.ObjectStorage
	if cfg.Storage.Enabled && cfg.Storage.Bucket != "" {
		s3Client, s3Err := pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if s3Err != nil {
			pkglogger.Warn("S3 storage init failed: %v (continuing without uploads)", s3Err)
		} else {
			store = s3Client
			pkglogger.Info("Connected to S3 storage")
		}
	}

	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiresIn.Std(),
		cfg.JWT.RefreshIn.Std(),
	)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	emailTokenRepo := repository.NewEmailTokenRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tagRepo := repository.NewTagRepository(db)
	fileRepo := repository.NewFileRepository(db)

	// Services
	hasher := auth.NewBcryptHasher()
	emailConfirmSvc := service.NewEmailConfirmService(emailTokenRepo, userRepo, mail, cfg.Server.BaseURL)
	userSvc := service.NewUserService(userRepo, hasher, emailConfirmSvc)
	authSvc := service.NewAuthService(userRepo, hasher, jwtManager)
	tagSvc := service.NewTagService(tagRepo)
	noticeSvc := service.NewNoticeService(noticeRepo, userRepo, tagSvc, cacheService)
	questionSvc := service.NewQuestionService(questionRepo, userRepo, tagSvc, cacheService)
	answerSvc := service.NewAnswerService(answerRepo, questionRepo, userRepo)
	commentSvc := service.NewCommentService(commentRepo, userRepo, noticeRepo, questionRepo, answerRepo)
	fileSvc := service.NewFileService(fileRepo, store)

	// Handlers
	authHandler := handler.NewAuthHandler(userSvc, authSvc, emailConfirmSvc)
	userHandler := handler.NewUserHandler(userSvc)
	noticeHandler := handler.NewNoticeHandler(noticeSvc)
	questionHandler := handler.NewQuestionHandler(questionSvc)
	answerHandler := handler.NewAnswerHandler(answerSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	fileHandler := handler.NewFileHandler(fileSvc)

	if env != "local" && env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400 * time.Second,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "gachicoding",
			"time":    time.Now().Unix(),
		})
	})

	routes.Setup(router,
		authHandler, userHandler,
		noticeHandler, questionHandler, answerHandler, commentHandler, fileHandler,
		jwtManager,
	)

	if sqlDB, dbErr := db.DB(); dbErr == nil {
		middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		pkglogger.Info("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	pkglogger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		pkglogger.Error("Forced shutdown: %v", err)
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	logMode := gormlogger.Warn
	if os.Getenv("APP_ENV") == "local" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
