package main

import (
	"thetis_mrv/internal/app/config"
	"thetis_mrv/internal/app/ds"
	"thetis_mrv/internal/app/dsn"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	postgresString := dsn.FromEnv()
	db, err := gorm.Open(postgres.Open(postgresString), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	// Порядок миграций: сначала ships, потом monitoring_results (внешний ключ)
	err = db.AutoMigrate(&ds.Ship{})
	if err != nil {
		logrus.Fatalf("error migrating ships: %v", err)
	}
	err = db.AutoMigrate(&ds.MonitoringResult{})
	if err != nil {
		logrus.Fatalf("error migrating monitoring_results: %v", err)
	}

	logrus.Info("Database migration completed")
}
