package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"hrdash/adapters/excel"
	"hrdash/app"
	"hrdash/domain/dashboard"
	"hrdash/internal"
	"hrdash/internal/config"
	"hrdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewLogger(internal.ParseLevel(appConfig.Log.Level))
	gin.SetMode(appConfig.Server.GinMode)

	// Load the dataset once; every render reads from this table
	excelConfig := excel.DefaultExcelConfig(appConfig.Data.FilePath)
	excelConfig.Sheet = appConfig.Data.Sheet
	log.Printf("Using data source: %s", excelConfig.FilePath)

	opts := app.DefaultServiceOptions()
	opts.DefaultAge = dashboard.AgeRange{Min: appConfig.Filters.DefaultAgeMin, Max: appConfig.Filters.DefaultAgeMax}
	opts.Logger = logger

	service, err := app.NewDashboardService(excel.NewDataReader(excelConfig), opts)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	server, err := ui.NewServer(service)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}

	log.Printf("Starting HR dashboard on port %s", appConfig.Server.Port)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
