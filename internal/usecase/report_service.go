package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"
	"guesthouse-ops-service/pkg/logger"
	"guesthouse-ops-service/pkg/metrics"
	"guesthouse-ops-service/pkg/schedule"
	"guesthouse-ops-service/pkg/utils"
	"guesthouse-ops-service/templates"
)

// Fetch windows around the reference date, in days
const (
	reservationWindowDays = 7
	analysisWindowDays    = 3
)

// ReservationReport is the daily reservation list
type ReservationReport struct {
	Date    string                    `json:"date"`
	Summary entity.ReservationSummary `json:"summary"`
	Text    string                    `json:"text"`
}

// CleaningReport is the daily housekeeping summary
type CleaningReport struct {
	entity.CleaningReport
	Text string `json:"text"`
}

// WellnessReport is the yoga and breakfast summary of one date
type WellnessReport struct {
	entity.WellnessReport
	Text string `json:"text"`
}

// ReportService derives the staff reports from the schedule feed
type ReportService struct {
	schedules repository.ScheduleRepository
	rooms     repository.RoomRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewReportService creates a new report service
func NewReportService(schedules repository.ScheduleRepository, rooms repository.RoomRepository, metrics *metrics.Metrics, logger logger.Logger) *ReportService {
	return &ReportService{
		schedules: schedules,
		rooms:     rooms,
		metrics:   metrics,
		logger:    logger,
	}
}

// ReservationReport lists today's check-ins, check-outs, staying guests and the coming week.
// Check-out dates are exclusive, so today's departures are only in yesterday's day records
// and the window starts one day back.
func (s *ReportService) ReservationReport(ctx context.Context, now time.Time) (*ReservationReport, error) {
	feed, err := s.fetch(ctx, utils.AddDays(now, -1), utils.AddDays(now, reservationWindowDays))
	if err != nil {
		return nil, err
	}

	views := schedule.BuildReservationViews(feed, now)
	summary := schedule.BuildReservationSummary(views, now)
	s.metrics.CountReport("reservations")

	return &ReservationReport{
		Date:    utils.FormatAPIDate(now),
		Summary: summary,
		Text:    templates.ReservationText(now, summary),
	}, nil
}

// CleaningReport analyzes yesterday, today and tomorrow around date
func (s *ReportService) CleaningReport(ctx context.Context, date time.Time) (*CleaningReport, error) {
	feed, err := s.fetch(ctx, utils.AddDays(date, -analysisWindowDays), utils.AddDays(date, analysisWindowDays))
	if err != nil {
		return nil, err
	}

	report := schedule.AnalyzeCleaning(schedule.SplitDays(feed, date))
	report.Date = utils.FormatAPIDate(date)
	s.metrics.CountReport("cleaning")

	return &CleaningReport{
		CleaningReport: report,
		Text:           templates.CleaningText(date, report),
	}, nil
}

// WellnessReport counts the yoga and breakfast guests served the morning after date
func (s *ReportService) WellnessReport(ctx context.Context, date time.Time) (*WellnessReport, error) {
	feed, err := s.fetch(ctx, utils.AddDays(date, -analysisWindowDays), utils.AddDays(date, analysisWindowDays))
	if err != nil {
		return nil, err
	}

	report := schedule.AnalyzeWellness(feed, date)
	s.metrics.CountReport("wellness")

	return &WellnessReport{
		WellnessReport: report,
		Text:           templates.WellnessText(date, report.Total),
	}, nil
}

// TodayStatus returns one row per catalog room with the guest staying on date
func (s *ReportService) TodayStatus(ctx context.Context, date time.Time) ([]entity.RoomStatusRow, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	feed, err := s.fetch(ctx, date, utils.AddDays(date, 1))
	if err != nil {
		return nil, err
	}

	day := utils.FormatAPIDate(date)
	rows := make([]entity.RoomStatusRow, 0, len(rooms))
	for _, room := range rooms {
		row := entity.RoomStatusRow{
			ID:      int(room.ID),
			Name:    room.Name,
			Special: room.Special,
		}
		if occupant := schedule.Occupant(feed, strconv.Itoa(int(room.ID)), day); occupant != nil {
			row.Customer = occupant.UserInfo.Name
			row.Contact = occupant.UserInfo.Phone
			row.CustomInout = strings.Join(schedule.FormServices(occupant.CustomFormInputs()), "\n")
			row.Notes = occupant.MemoText()
		}
		rows = append(rows, row)
	}

	s.metrics.CountReport("today_status")
	return rows, nil
}

func (s *ReportService) fetch(ctx context.Context, start, end time.Time) (*entity.ScheduleFeed, error) {
	begin := time.Now()
	feed, err := s.schedules.FetchSchedule(ctx, utils.FormatAPIDate(start), utils.FormatAPIDate(end))
	if err != nil {
		s.metrics.ObserveFetch("error", time.Since(begin))
		s.metrics.CountError("fetch")
		s.logger.Error("Failed to fetch schedule", "startDate", utils.FormatAPIDate(start), "endDate", utils.FormatAPIDate(end), "error", err)
		return nil, err
	}
	s.metrics.ObserveFetch("ok", time.Since(begin))
	return feed, nil
}
