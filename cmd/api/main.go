package main

import (
	"log"

	"hrdash/adapters/excel"
	"hrdash/app"
	"hrdash/domain/dashboard"
	"hrdash/internal"
	"hrdash/internal/config"
	"hrdash/ui"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	excelConfig := excel.DefaultExcelConfig(appConfig.Data.FilePath)
	excelConfig.Sheet = appConfig.Data.Sheet

	opts := app.DefaultServiceOptions()
	opts.DefaultAge = dashboard.AgeRange{Min: appConfig.Filters.DefaultAgeMin, Max: appConfig.Filters.DefaultAgeMax}
	opts.Logger = internal.NewLogger(internal.ParseLevel(appConfig.Log.Level))

	service, err := app.NewDashboardService(excel.NewDataReader(excelConfig), opts)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	api := ui.NewApp(service, ui.Config{
		Port:        appConfig.Server.Port,
		CORSOrigins: appConfig.Server.CORSOrigins,
	})
	log.Fatal(api.Start())
}
