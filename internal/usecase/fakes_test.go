package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"guesthouse-ops-service/internal/domain/entity"
)

var seoul = time.FixedZone("KST", 9*60*60)

func at(date string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" 17:00", seoul)
	if err != nil {
		panic(err)
	}
	return t
}

type fakeSchedules struct {
	feed  *entity.ScheduleFeed
	err   error
	calls [][2]string
}

// FetchSchedule returns only the day records inside [start, end), like the PMS does
func (f *fakeSchedules) FetchSchedule(_ context.Context, start, end string) (*entity.ScheduleFeed, error) {
	f.calls = append(f.calls, [2]string{start, end})
	if f.err != nil {
		return nil, f.err
	}
	if f.feed == nil {
		return nil, nil
	}

	window := &entity.ScheduleFeed{}
	for _, lodgmentType := range f.feed.LodgmentTypes {
		var days []entity.Day
		for _, d := range lodgmentType.Days {
			if d.Date >= start && d.Date < end {
				days = append(days, d)
			}
		}
		lodgmentType.Days = days
		window.LodgmentTypes = append(window.LodgmentTypes, lodgmentType)
	}
	return window, nil
}

type fakeRooms struct {
	rooms []entity.Room
	err   error
}

func (f *fakeRooms) FindByNumber(_ context.Context, number int) (*entity.Room, error) {
	for i := range f.rooms {
		if int(f.rooms[i].ID) == number {
			room := f.rooms[i]
			return &room, nil
		}
	}
	return nil, entity.ErrUnknownRoom
}

func (f *fakeRooms) List(_ context.Context) ([]entity.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rooms, nil
}

type fakeLedger struct {
	mu      sync.Mutex
	entries map[string][]int
	loadErr error
	saveErr error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{entries: make(map[string][]int)}
}

func (f *fakeLedger) Load(_ context.Context, key string) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]int(nil), f.entries[key]...), nil
}

func (f *fakeLedger) Save(_ context.Context, key string, rooms []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.entries[key] = append([]int(nil), rooms...)
	return nil
}

type fakeSender struct {
	channel string
	result  *entity.SendResult
	err     error
	sent    [][]entity.Message
}

func (f *fakeSender) CanHandle(channel string) bool { return channel == f.channel }

func (f *fakeSender) Send(_ context.Context, messages []entity.Message) (*entity.SendResult, error) {
	f.sent = append(f.sent, messages)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &entity.SendResult{Success: true, Message: "ok"}, nil
}

type fakeRouter struct {
	handlers []SenderHandler
}

func (r *fakeRouter) Register(h SenderHandler) { r.handlers = append(r.handlers, h) }

func (r *fakeRouter) GetHandler(channel string) SenderHandler {
	for _, h := range r.handlers {
		if h.CanHandle(channel) {
			return h
		}
	}
	return nil
}

type fakeSendLogs struct {
	logs []entity.SendLog
}

func (f *fakeSendLogs) Create(_ context.Context, log *entity.SendLog) error {
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeSendLogs) FindByDay(_ context.Context, dayKey string) ([]entity.SendLog, error) {
	var out []entity.SendLog
	for _, l := range f.logs {
		if l.DayKey == dayKey {
			out = append(out, l)
		}
	}
	return out, nil
}

var errBoom = errors.New("boom")

func reservation(id, name, phone, checkIn, checkOut string) entity.Reservation {
	return entity.Reservation{
		ID:       id,
		UserInfo: entity.UserInfo{Name: name, Phone: phone},
		Status:   "confirmed",
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func lodgmentType(name string, days ...entity.Day) entity.LodgmentType {
	return entity.LodgmentType{LodgmentTypeID: name, LodgmentTypeName: name, Days: days}
}

func dayOf(date string, reservations ...entity.Reservation) entity.Day {
	return entity.Day{
		Date:      date,
		Lodgments: []entity.Lodgment{{LodgmentID: "l-" + date, Reservations: reservations}},
	}
}
