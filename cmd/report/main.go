package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/infrastructure/config"
	repo "guesthouse-ops-service/internal/interface/repository"
	"guesthouse-ops-service/internal/usecase"
	"guesthouse-ops-service/pkg/logger"
	"guesthouse-ops-service/pkg/utils"
)

// report prints the reservation, cleaning and wellness summaries for one day
func main() {
	dateFlag := flag.String("date", "", "report date (YYYY-MM-DD), defaults to today")
	only := flag.String("only", "", "print a single report: reservations, cleaning or wellness")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config", "error", err)
	}

	date := time.Now().In(cfg.Location)
	if *dateFlag != "" {
		date, err = utils.ParseAPIDate(*dateFlag, cfg.Location)
		if err != nil {
			log.Fatal("Invalid date", "date", *dateFlag, "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pms := repo.NewPMSScheduleRepository(cfg.PMSBaseURL, cfg.PMSAccommoID, cfg.PMSTimeout, nil, log)
	schedules := repo.NewCachedScheduleRepository(pms, 0, 0, log)
	reports := usecase.NewReportService(schedules, repo.NewStaticRoomRepository(entity.DefaultRooms()), nil, log)

	if *only == "" || *only == "reservations" {
		report, err := reports.ReservationReport(ctx, date)
		if err != nil {
			log.Fatal("Failed to build reservation report", "error", err)
		}
		fmt.Println(report.Text)
	}
	if *only == "" || *only == "cleaning" {
		report, err := reports.CleaningReport(ctx, date)
		if err != nil {
			log.Fatal("Failed to build cleaning report", "error", err)
		}
		fmt.Println(report.Text)
		fmt.Println()
	}
	if *only == "" || *only == "wellness" {
		report, err := reports.WellnessReport(ctx, date)
		if err != nil {
			log.Fatal("Failed to build wellness report", "error", err)
		}
		fmt.Println(report.Text)
	}
}
