package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/domain/repository"
	"guesthouse-ops-service/pkg/logger"
	"guesthouse-ops-service/pkg/metrics"
	"guesthouse-ops-service/pkg/schedule"
	"guesthouse-ops-service/pkg/utils"
	"guesthouse-ops-service/templates"

	"github.com/google/uuid"
)

// CheckInConfig holds the sending identity of check-in messages
type CheckInConfig struct {
	Channel  string
	From     string
	NotifyTo string
	Contact  string
}

// CheckInMessenger sends at most one check-in message per room per day
type CheckInMessenger struct {
	schedules repository.ScheduleRepository
	rooms     repository.RoomRepository
	ledger    *SendLedger
	senders   SenderRouter
	sendLogs  repository.SendLogRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
	config    CheckInConfig

	// serializes ledger check, send and ledger write within the process
	mu    sync.Mutex
	newID func() string
}

// NewCheckInMessenger creates a new check-in messenger. sendLogs may be nil.
func NewCheckInMessenger(
	schedules repository.ScheduleRepository,
	rooms repository.RoomRepository,
	ledger *SendLedger,
	senders SenderRouter,
	sendLogs repository.SendLogRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
	config CheckInConfig,
) *CheckInMessenger {
	if config.Channel == "" {
		config.Channel = ChannelSMS
	}
	return &CheckInMessenger{
		schedules: schedules,
		rooms:     rooms,
		ledger:    ledger,
		senders:   senders,
		sendLogs:  sendLogs,
		metrics:   metrics,
		logger:    logger,
		config:    config,
		newID:     func() string { return uuid.New().String() },
	}
}

// SentRooms returns the rooms already notified on the day of now
func (m *CheckInMessenger) SentRooms(ctx context.Context, now time.Time) ([]int, error) {
	return m.ledger.SentRooms(ctx, now)
}

// SendLogs returns the audit records of the day of now; empty without an audit store
func (m *CheckInMessenger) SendLogs(ctx context.Context, now time.Time) ([]entity.SendLog, error) {
	if m.sendLogs == nil {
		return []entity.SendLog{}, nil
	}
	logs, err := m.sendLogs.FindByDay(ctx, utils.TodayKey(now))
	if err != nil {
		return nil, fmt.Errorf("failed to load send logs: %w", err)
	}
	return logs, nil
}

// SendCheckIn sends the check-in message of roomNumber for the day of now.
// A room already in the day's ledger yields OutcomeAlreadySent without any network call.
func (m *CheckInMessenger) SendCheckIn(ctx context.Context, roomNumber int, now time.Time) (*entity.CheckInResult, error) {
	room, err := m.rooms.FindByNumber(ctx, roomNumber)
	if err != nil {
		return nil, fmt.Errorf("room %d: %w", roomNumber, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	requestID := m.newID()
	log := m.logger.With("requestId", requestID, "room", roomNumber)

	sent, err := m.ledger.HasSent(ctx, roomNumber, now)
	if err != nil {
		m.metrics.CountError("ledger")
		return nil, err
	}
	if sent {
		m.metrics.CountDuplicate()
		log.Warn("Check-in message already sent today")
		return &entity.CheckInResult{
			RequestID:  requestID,
			RoomNumber: roomNumber,
			Outcome:    entity.OutcomeAlreadySent,
			Message:    "이미 오늘 전송된 객실입니다.",
		}, nil
	}

	day := utils.FormatAPIDate(now)
	feed, err := m.schedules.FetchSchedule(ctx, day, utils.FormatAPIDate(utils.AddDays(now, 1)))
	if err != nil {
		m.metrics.CountError("fetch")
		return nil, fmt.Errorf("failed to load guest of room %d: %w", roomNumber, err)
	}

	occupant := schedule.Occupant(feed, strconv.Itoa(roomNumber), day)
	if occupant == nil || occupant.UserInfo.Phone == "" {
		return nil, fmt.Errorf("room %d on %s: %w", roomNumber, day, entity.ErrNoGuest)
	}

	if m.config.From == "" {
		return nil, &entity.ConfigError{Keys: []string{"SOLAPI_FROM_NUMBER"}}
	}
	handler := m.senders.GetHandler(m.config.Channel)
	if handler == nil {
		return nil, &entity.ConfigError{Keys: []string{"NOTIFY_CHANNEL"}}
	}

	to := occupant.UserInfo.Phone
	if m.config.NotifyTo != "" {
		to = m.config.NotifyTo
	}
	message := entity.Message{
		To:   utils.DigitsOnly(to),
		From: utils.DigitsOnly(m.config.From),
		Text: templates.CheckInMessage(*room, m.config.Contact),
		Room: room,
	}

	sendLog := &entity.SendLog{
		RequestID:  requestID,
		RoomNumber: roomNumber,
		DayKey:     utils.TodayKey(now),
		Phone:      message.To,
		Channel:    m.config.Channel,
	}

	result, err := handler.Send(ctx, []entity.Message{message})
	if err != nil || result == nil || !result.Success {
		sendErr := &entity.SendError{Channel: m.config.Channel, Err: err}
		if err == nil {
			sendErr.Reason = "provider rejected the message"
			if result != nil && result.Error != "" {
				sendErr.Reason = result.Error
			}
		}

		var configErr *entity.ConfigError
		if errors.As(err, &configErr) {
			return nil, configErr
		}

		sendLog.Status = entity.SendStatusFailed
		sendLog.Error = sendErr.Error()
		m.audit(ctx, log, sendLog)
		m.metrics.CountMessage(m.config.Channel, entity.SendStatusFailed)
		log.Error("Check-in message failed", "error", sendErr)
		return nil, sendErr
	}

	// the message is out; a ledger failure must not make the room sendable again
	if err := m.markSent(ctx, roomNumber, now); err != nil {
		m.metrics.CountError("ledger")
		log.Error("Message sent but ledger update failed", "error", err)
	}

	sendLog.Status = entity.SendStatusSent
	m.audit(ctx, log, sendLog)
	m.metrics.CountMessage(m.config.Channel, entity.SendStatusSent)
	log.Info("Check-in message sent", "channel", m.config.Channel, "guest", occupant.UserInfo.Name)

	return &entity.CheckInResult{
		RequestID:  requestID,
		RoomNumber: roomNumber,
		Outcome:    entity.OutcomeSent,
		Channel:    m.config.Channel,
		Message:    fmt.Sprintf("%s (%s) 객실의 체크인 메시지가 전송되었습니다.", room.Name, room.Type),
		SentAt:     now,
	}, nil
}

// markSent writes the ledger, retrying once
func (m *CheckInMessenger) markSent(ctx context.Context, roomNumber int, now time.Time) error {
	err := m.ledger.MarkSent(ctx, roomNumber, now)
	if err == nil {
		return nil
	}
	m.logger.Warn("Retrying ledger update", "room", roomNumber, "error", err)
	return m.ledger.MarkSent(ctx, roomNumber, now)
}

func (m *CheckInMessenger) audit(ctx context.Context, log logger.Logger, sendLog *entity.SendLog) {
	if m.sendLogs == nil {
		return
	}
	if err := m.sendLogs.Create(ctx, sendLog); err != nil {
		log.Warn("Failed to write send log", "error", err)
	}
}
