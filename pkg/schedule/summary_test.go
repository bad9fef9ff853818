package schedule

import (
	"testing"

	"guesthouse-ops-service/internal/domain/entity"
)

func TestBuildReservationSummary(t *testing.T) {
	today := day("2024-09-07")
	views := []entity.ReservationView{
		{ID: "in", CheckIn: "2024-09-07", CheckOut: "2024-09-08", Status: entity.StatusCheckIn},
		{ID: "in", CheckIn: "2024-09-07", CheckOut: "2024-09-08", Status: entity.StatusCheckIn},
		{ID: "out", CheckIn: "2024-09-05", CheckOut: "2024-09-07", Status: entity.StatusCheckOut},
		{ID: "stay", CheckIn: "2024-09-06", CheckOut: "2024-09-09", Status: entity.StatusStaying},
		{ID: "later", CheckIn: "2024-09-10", CheckOut: "2024-09-11", Status: entity.StatusUpcoming},
		{ID: "soon", CheckIn: "2024-09-08", CheckOut: "2024-09-09", Status: entity.StatusUpcoming},
		{ID: "soon2", CheckIn: "2024-09-08", CheckOut: "2024-09-10", Status: entity.StatusUpcoming},
		{ID: "past", CheckIn: "2024-09-01", CheckOut: "2024-09-02", Status: entity.StatusUpcoming},
	}

	summary := BuildReservationSummary(views, today)

	if len(summary.CheckIns) != 1 || summary.CheckIns[0].ID != "in" {
		t.Errorf("CheckIns = %+v", summary.CheckIns)
	}
	if len(summary.CheckOuts) != 1 || summary.CheckOuts[0].ID != "out" {
		t.Errorf("CheckOuts = %+v", summary.CheckOuts)
	}
	if len(summary.Staying) != 1 || summary.Staying[0].ID != "stay" {
		t.Errorf("Staying = %+v", summary.Staying)
	}
	if len(summary.Upcoming) != 2 {
		t.Fatalf("Upcoming = %+v, want two dates", summary.Upcoming)
	}
	if summary.Upcoming[0].Date != "2024-09-08" || len(summary.Upcoming[0].Reservations) != 2 {
		t.Errorf("first upcoming day = %+v", summary.Upcoming[0])
	}
	if summary.Upcoming[1].Date != "2024-09-10" {
		t.Errorf("second upcoming day = %+v", summary.Upcoming[1])
	}
}
