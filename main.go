package main

import (
	"os"

	"bukubersama-backend/app/repository"
	"bukubersama-backend/app/service"
	"bukubersama-backend/database"
	"bukubersama-backend/metrics"
	"bukubersama-backend/middleware"
	"bukubersama-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =================================================================
	// LOGGER + ENV
	// =================================================================
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if err := godotenv.Load(); err != nil {
		log.Warn(".env tidak ditemukan, menggunakan environment default")
	}

	// =================================================================
	// INIT DB (POSTGRES + MONGODB)
	// =================================================================
	dbConn, err := database.InitDB()
	if err != nil {
		log.Fatalw("gagal koneksi database", "error", err)
	}

	// =================================================================
	// SEED DATA (UNIVERSITAS + SEMESTER + USERS + MATERI)
	// =================================================================
	database.RunSeeders(dbConn.Postgres, log)

	// =================================================================
	// REPOSITORIES
	// =================================================================
	userRepo := repository.NewUserRepository(dbConn.Postgres)
	universityRepo := repository.NewUniversityRepository(dbConn.Postgres)
	materialRepo := repository.NewMaterialRepository(dbConn.Postgres, dbConn.Mongo)
	commentRepo := repository.NewCommentRepository(dbConn.Postgres)
	appreciationRepo := repository.NewAppreciationRepository(dbConn.Postgres)
	pointRepo := repository.NewPointRepository(dbConn.Postgres)
	categoryRepo := repository.NewCategoryRepository(dbConn.Postgres)

	// =================================================================
	// SERVICES
	// =================================================================
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, authService)
	universityService := service.NewUniversityService(universityRepo)
	reviewer := service.NewHeuristicReviewer()
	materialService := service.NewMaterialService(materialRepo, userRepo, universityRepo, reviewer, log)
	commentService := service.NewCommentService(commentRepo, materialRepo, userRepo)
	appreciationService := service.NewAppreciationService(appreciationRepo, materialRepo, userRepo)
	pointService := service.NewPointService(pointRepo, userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	catalogService := service.NewCatalogService(materialRepo, universityRepo)

	gateway := service.NewIrisGateway(
		os.Getenv("MIDTRANS_SERVER_KEY"),
		os.Getenv("MIDTRANS_ENV") == "production",
	)
	walletService := service.NewWalletService(pointRepo, userRepo, gateway, log)

	// =================================================================
	// ROUTER
	// =================================================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	routes.AuthRoutes(r, userService)
	routes.UserRoutes(r, userService)
	routes.UniversityRoutes(r, universityService)
	routes.MaterialRoutes(r, materialService)
	routes.CommentRoutes(r, commentService)
	routes.AppreciationRoutes(r, appreciationService)
	routes.PointRoutes(r, pointService)
	routes.CategoryRoutes(r, categoryService)
	routes.CatalogRoutes(r, catalogService)
	routes.WalletRoutes(r, walletService)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "BukuBersama API RUNNING",
			"version": "1.0.0",
		})
	})

	// =================================================================
	// START SERVER
	// =================================================================
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Infow("server berjalan", "port", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalw("gagal menjalankan server", "error", err)
	}
}
