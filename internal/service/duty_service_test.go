package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/KrishSharma007/hostel-management/internal/dto"
)

func setupDutyService() (DutyService, *mocks) {
	m := newMocks()
	svc := NewDutyService(m.repo(), zap.NewNop())
	return svc, m
}

func TestDutyService_Create(t *testing.T) {
	svc, m := setupDutyService()
	hostel := m.addHostel("H1")
	attendant := m.addAttendant("A1")

	duty, err := svc.Create(context.Background(), &dto.CreateAttendantDutyRequest{
		AttendantID: attendant.PersonID,
		HostelID:    hostel.ID,
		DutyType:    "CLEANING",
		ShiftType:   "EVENING",
		DutyDate:    time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if duty.AttendantID != attendant.ID {
		t.Errorf("duty should reference the attendant role id %d, got %d", attendant.ID, duty.AttendantID)
	}
}

func TestDutyService_Create_AttendantNotFound(t *testing.T) {
	svc, m := setupDutyService()
	hostel := m.addHostel("H1")

	_, err := svc.Create(context.Background(), &dto.CreateAttendantDutyRequest{
		AttendantID: 42,
		HostelID:    hostel.ID,
		DutyType:    "CLEANING",
		ShiftType:   "EVENING",
		DutyDate:    time.Now(),
	})
	if !errors.Is(err, ErrAttendantNotFound) {
		t.Errorf("expected ErrAttendantNotFound, got: %v", err)
	}
}

func TestDutyService_Update(t *testing.T) {
	svc, m := setupDutyService()
	hostel := m.addHostel("H1")
	attendant := m.addAttendant("A1")

	created, err := svc.Create(context.Background(), &dto.CreateAttendantDutyRequest{
		AttendantID: attendant.PersonID,
		HostelID:    hostel.ID,
		DutyType:    "CLEANING",
		ShiftType:   "EVENING",
		DutyDate:    time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateAttendantDutyRequest{
		DutyType:  "SECURITY",
		ShiftType: "NIGHT",
		DutyDate:  time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if updated.DutyType != "SECURITY" || updated.ShiftType != "NIGHT" {
		t.Errorf("duty fields not updated: %+v", updated)
	}
}

func TestDutyService_Delete_NotFound(t *testing.T) {
	svc, _ := setupDutyService()

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, ErrDutyNotFound) {
		t.Errorf("expected ErrDutyNotFound, got: %v", err)
	}
}

func TestDutyService_ListByAttendant(t *testing.T) {
	svc, m := setupDutyService()
	hostel := m.addHostel("H1")
	attendant := m.addAttendant("A1")

	for _, day := range []int{1, 15} {
		_, err := svc.Create(context.Background(), &dto.CreateAttendantDutyRequest{
			AttendantID: attendant.PersonID,
			HostelID:    hostel.ID,
			DutyType:    "CLEANING",
			ShiftType:   "MORNING",
			DutyDate:    time.Date(2025, 8, day, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("Create should succeed: %v", err)
		}
	}

	duties, err := svc.ListByAttendant(context.Background(), attendant.PersonID)
	if err != nil {
		t.Fatalf("ListByAttendant should succeed: %v", err)
	}
	if len(duties) != 2 {
		t.Fatalf("expected 2 duties, got %d", len(duties))
	}
	if !duties[0].DutyDate.After(duties[1].DutyDate) {
		t.Errorf("newest duty should come first: %v before %v", duties[0].DutyDate, duties[1].DutyDate)
	}
}

func TestDutyService_ListByAttendant_NotFound(t *testing.T) {
	svc, _ := setupDutyService()

	_, err := svc.ListByAttendant(context.Background(), 42)
	if !errors.Is(err, ErrAttendantNotFound) {
		t.Errorf("expected ErrAttendantNotFound, got: %v", err)
	}
}

func TestDutyService_ListByHostel(t *testing.T) {
	svc, m := setupDutyService()
	hostel := m.addHostel("H1")
	attendant := m.addAttendant("A1")

	_, err := svc.Create(context.Background(), &dto.CreateAttendantDutyRequest{
		AttendantID: attendant.PersonID,
		HostelID:    hostel.ID,
		DutyType:    "SECURITY",
		ShiftType:   "NIGHT",
		DutyDate:    time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	duties, err := svc.ListByHostel(context.Background(), hostel.ID)
	if err != nil {
		t.Fatalf("ListByHostel should succeed: %v", err)
	}
	if len(duties) != 1 {
		t.Fatalf("expected 1 duty, got %d", len(duties))
	}
	if duties[0].HostelID != hostel.ID {
		t.Errorf("duty should belong to hostel %d, got %d", hostel.ID, duties[0].HostelID)
	}
}

func TestDutyService_ListByHostel_NotFound(t *testing.T) {
	svc, _ := setupDutyService()

	_, err := svc.ListByHostel(context.Background(), 42)
	if !errors.Is(err, ErrHostelNotFound) {
		t.Errorf("expected ErrHostelNotFound, got: %v", err)
	}
}
