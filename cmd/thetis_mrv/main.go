package main

// go run cmd/thetis_mrv/main.go

import (
	"thetis_mrv/internal/app/config"
	"thetis_mrv/internal/app/dsn"
	"thetis_mrv/internal/app/handler"
	"thetis_mrv/internal/app/ingest"
	"thetis_mrv/internal/app/pkg"
	"thetis_mrv/internal/app/repository"
	"thetis_mrv/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "thetis_mrv/docs" // Swagger docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title THETIS-MRV Emissions Registry API
// @version 1.0
// @description Ingests THETIS-MRV disclosure spreadsheets and serves the registry search view and emissions leaderboards.
// @BasePath /api
func main() {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		logrus.Infof("Incoming request: %s %s", c.Request.Method, c.Request.URL.Path)
	})

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()

	rep, errRep := repository.New(postgresString, conf.RedisEndpoint, conf.RedisPassword)
	if errRep != nil {
		logrus.Fatalf("error initializing repository: %v", errRep)
	}

	files, err := storage.NewMinioStorage(conf)
	if err != nil {
		logrus.Fatalf("error initializing object storage: %v", err)
	}

	orchestrator := ingest.NewOrchestrator(files, rep)
	hand := handler.NewHandler(rep, orchestrator)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
