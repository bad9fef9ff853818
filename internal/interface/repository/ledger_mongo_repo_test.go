package repository

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"testing"

	"guesthouse-ops-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type recordingLogger struct {
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Fatal(string, ...interface{}) {}

func (l *recordingLogger) Error(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) With(...interface{}) logger.Logger { return l }

func TestMongoLedgerRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "guesthouse." + ledgerCollection

	mt.Run("index failure is logged", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    86,
			Name:    "IndexKeySpecsConflict",
			Message: "index conflict",
		}))

		log := &recordingLogger{}
		NewMongoLedgerRepository(mt.DB, log)

		if len(log.errors) != 1 || !strings.Contains(log.errors[0], "index") {
			t.Errorf("logged errors = %v, want one index failure", log.errors)
		}
	})

	mt.Run("missing key is empty", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		log := &recordingLogger{}
		repo := NewMongoLedgerRepository(mt.DB, log)
		rooms, err := repo.Load(context.Background(), "checkin-sent-2024-09-07")
		if err != nil || len(rooms) != 0 {
			t.Errorf("Load() = %v, %v; want empty", rooms, err)
		}
		if len(log.errors) != 0 {
			t.Errorf("logged errors = %v, want none", log.errors)
		}
	})

	mt.Run("save and load", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "key", Value: "checkin-sent-2024-09-07"},
				{Key: "rooms", Value: bson.A{2, 4}},
			}),
		)

		repo := NewMongoLedgerRepository(mt.DB, &recordingLogger{})
		ctx := context.Background()
		if err := repo.Save(ctx, "checkin-sent-2024-09-07", []int{2, 4}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		rooms, err := repo.Load(ctx, "checkin-sent-2024-09-07")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !reflect.DeepEqual(rooms, []int{2, 4}) {
			t.Errorf("Load() = %v, want [2 4]", rooms)
		}
	})
}
