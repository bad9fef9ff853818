package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
	"guesthouse-ops-service/internal/usecase"
	"guesthouse-ops-service/pkg/logger"
	"guesthouse-ops-service/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// Reports produces the staff reports
type Reports interface {
	ReservationReport(ctx context.Context, now time.Time) (*usecase.ReservationReport, error)
	CleaningReport(ctx context.Context, date time.Time) (*usecase.CleaningReport, error)
	WellnessReport(ctx context.Context, date time.Time) (*usecase.WellnessReport, error)
	TodayStatus(ctx context.Context, date time.Time) ([]entity.RoomStatusRow, error)
}

// CheckIns sends and tracks check-in messages
type CheckIns interface {
	SentRooms(ctx context.Context, now time.Time) ([]int, error)
	SendCheckIn(ctx context.Context, roomNumber int, now time.Time) (*entity.CheckInResult, error)
	SendLogs(ctx context.Context, now time.Time) ([]entity.SendLog, error)
}

// Messages relays composed messages
type Messages interface {
	Send(ctx context.Context, messages []entity.Message) (*entity.SendResult, error)
}

// Refresher reloads the schedule feed
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Pinger checks a notification relay
type Pinger interface {
	Ping(ctx context.Context) (*entity.SendResult, error)
}

// Handler serves the operations API
type Handler struct {
	reports   Reports
	checkIns  CheckIns
	messages  Messages
	refresher Refresher
	pinger    Pinger
	validate  *validator.Validate
	location  *time.Location
	now       func() time.Time
	logger    logger.Logger
}

// Option configures a Handler
type Option func(*Handler)

// WithClock overrides the wall clock
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// WithPinger enables the webhook ping endpoint
func WithPinger(p Pinger) Option {
	return func(h *Handler) { h.pinger = p }
}

// NewHandler creates the API handler. Dates are interpreted in loc.
func NewHandler(reports Reports, checkIns CheckIns, messages Messages, refresher Refresher, loc *time.Location, logger logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		reports:   reports,
		checkIns:  checkIns,
		messages:  messages,
		refresher: refresher,
		validate:  validator.New(),
		location:  loc,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the API routes on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/reservations/text", h.reservationText)
	mux.HandleFunc("GET /api/cleaning", h.cleaning)
	mux.HandleFunc("GET /api/wellness", h.wellness)
	mux.HandleFunc("GET /api/today-status", h.todayStatus)
	mux.HandleFunc("GET /api/checkin/sent", h.sentRooms)
	mux.HandleFunc("GET /api/checkin/logs", h.sendLogs)
	mux.HandleFunc("POST /api/checkin/{room}", h.sendCheckIn)
	mux.HandleFunc("POST /api/send-message", h.sendMessage)
	mux.HandleFunc("POST /api/refresh", h.refresh)
	if h.pinger != nil {
		mux.HandleFunc("POST /api/webhook/ping", h.pingWebhook)
	}
}

func (h *Handler) today() time.Time {
	return h.now().In(h.location)
}

// dateParam reads ?date=YYYY-MM-DD, defaulting to today
func (h *Handler) dateParam(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get("date")
	if value == "" {
		return h.today(), nil
	}
	return utils.ParseAPIDate(value, h.location)
}

func (h *Handler) reservationText(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.ReservationReport(r.Context(), h.today())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) cleaning(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_date", Message: err.Error()})
		return
	}
	report, err := h.reports.CleaningReport(r.Context(), date)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) wellness(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_date", Message: err.Error()})
		return
	}
	report, err := h.reports.WellnessReport(r.Context(), date)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) todayStatus(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_date", Message: err.Error()})
		return
	}
	rows, err := h.reports.TodayStatus(r.Context(), date)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":  utils.FormatAPIDate(date),
		"rooms": rows,
	})
}

func (h *Handler) sentRooms(w http.ResponseWriter, r *http.Request) {
	now := h.today()
	rooms, err := h.checkIns.SentRooms(r.Context(), now)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":      utils.FormatAPIDate(now),
		"sentRooms": rooms,
	})
}

func (h *Handler) sendLogs(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_date", Message: err.Error()})
		return
	}
	logs, err := h.checkIns.SendLogs(r.Context(), date)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date": utils.FormatAPIDate(date),
		"logs": logs,
	})
}

func (h *Handler) sendCheckIn(w http.ResponseWriter, r *http.Request) {
	room, err := strconv.Atoi(r.PathValue("room"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid_room", Message: "room must be a number"})
		return
	}

	result, err := h.checkIns.SendCheckIn(r.Context(), room, h.today())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if result.Outcome == entity.OutcomeAlreadySent {
		writeJSON(w, http.StatusConflict, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req entity.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, entity.SendResult{Success: false, Error: "invalid JSON body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, entity.SendResult{Success: false, Error: "Missing or invalid `messages` array in request body"})
		return
	}

	result, err := h.messages.Send(r.Context(), req.Messages)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if !result.Success {
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.Refresh(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"refreshedAt": h.today().Format(time.RFC3339),
	})
}

func (h *Handler) pingWebhook(w http.ResponseWriter, r *http.Request) {
	result, err := h.pinger.Ping(r.Context())
	if err != nil {
		h.writeError(w, &entity.SendError{Channel: usecase.ChannelWebhook, Err: err})
		return
	}
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, result)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError maps domain errors to HTTP statuses
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		fetchErr  *entity.FetchError
		sendErr   *entity.SendError
		configErr *entity.ConfigError
	)

	switch {
	case errors.Is(err, entity.ErrUnknownRoom):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "unknown_room", Message: err.Error()})
	case errors.Is(err, entity.ErrNoGuest):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "no_guest", Message: err.Error()})
	case errors.As(err, &configErr):
		h.logger.Error("Missing configuration", "keys", configErr.Keys)
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "not_configured", Message: err.Error()})
	case errors.As(err, &fetchErr):
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "fetch_failed", Message: err.Error()})
	case errors.As(err, &sendErr):
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "send_failed", Message: err.Error()})
	case errors.Is(err, context.Canceled):
		writeJSON(w, http.StatusRequestTimeout, errorBody{Error: "canceled", Message: err.Error()})
	default:
		h.logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "server_error", Message: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
