package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/KrishSharma007/hostel-management/internal/dto"
)

func setupWardenService() (WardenService, *mocks) {
	m := newMocks()
	svc := NewWardenService(m.repo(), zap.NewNop())
	return svc, m
}

func assignmentReq(hostelID uint) *dto.HostelAssignmentRequest {
	return &dto.HostelAssignmentRequest{
		HostelID:       hostelID,
		AssignmentDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestWardenService_Create_WithAssignment(t *testing.T) {
	svc, m := setupWardenService()
	hostel := m.addHostel("H1")

	result, err := svc.Create(context.Background(), &dto.CreateWardenRequest{
		Name:             "Maya Iyer",
		HostelAssignment: assignmentReq(hostel.ID),
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.ID != result.PersonID {
		t.Errorf("response id should alias the person id, got %d vs %d", result.ID, result.PersonID)
	}
	if len(result.HostelAssignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(result.HostelAssignments))
	}
	if result.HostelAssignments[0].EndDate != nil {
		t.Error("initial assignment should be active")
	}
}

func TestWardenService_Create_HostelNotFound(t *testing.T) {
	svc, _ := setupWardenService()

	_, err := svc.Create(context.Background(), &dto.CreateWardenRequest{
		Name:             "Maya Iyer",
		HostelAssignment: assignmentReq(999),
	})
	if !errors.Is(err, ErrHostelNotFound) {
		t.Errorf("expected ErrHostelNotFound, got: %v", err)
	}
}

// Moving a warden between hostels must close the old assignment and keep
// exactly one active.
func TestWardenService_Update_TransferSupersedes(t *testing.T) {
	svc, m := setupWardenService()
	h1 := m.addHostel("H1")
	h2 := m.addHostel("H2")
	warden := m.addWarden("Transferred")

	if _, err := svc.Update(context.Background(), warden.PersonID, &dto.CreateWardenRequest{
		Name:             "Transferred",
		HostelAssignment: assignmentReq(h1.ID),
	}); err != nil {
		t.Fatalf("first assignment should succeed: %v", err)
	}

	result, err := svc.Update(context.Background(), warden.PersonID, &dto.CreateWardenRequest{
		Name:             "Transferred",
		HostelAssignment: assignmentReq(h2.ID),
	})
	if err != nil {
		t.Fatalf("transfer should succeed: %v", err)
	}

	active := 0
	for _, a := range result.HostelAssignments {
		if a.EndDate == nil {
			active++
			if a.HostelID != h2.ID {
				t.Errorf("active assignment should be at hostel %d, got %d", h2.ID, a.HostelID)
			}
		}
	}
	if active != 1 {
		t.Errorf("expected exactly 1 active assignment, got %d", active)
	}
	if len(result.HostelAssignments) != 2 {
		t.Errorf("history should keep both assignments, got %d", len(result.HostelAssignments))
	}
}

func TestWardenService_Update_SameHostelNoChange(t *testing.T) {
	svc, m := setupWardenService()
	hostel := m.addHostel("H1")
	warden := m.addWarden("Stayer")

	for i := 0; i < 2; i++ {
		if _, err := svc.Update(context.Background(), warden.PersonID, &dto.CreateWardenRequest{
			Name:             "Stayer",
			HostelAssignment: assignmentReq(hostel.ID),
		}); err != nil {
			t.Fatalf("Update should succeed: %v", err)
		}
	}

	if len(m.assignments.assignments) != 1 {
		t.Errorf("same-hostel update should not create a new assignment, got %d", len(m.assignments.assignments))
	}
}

func TestWardenService_Update_NotFound(t *testing.T) {
	svc, _ := setupWardenService()

	_, err := svc.Update(context.Background(), 42, &dto.CreateWardenRequest{Name: "Ghost"})
	if !errors.Is(err, ErrWardenNotFound) {
		t.Errorf("expected ErrWardenNotFound, got: %v", err)
	}
}

func TestWardenService_Delete(t *testing.T) {
	svc, m := setupWardenService()
	warden := m.addWarden("Leaver")

	if err := svc.Delete(context.Background(), warden.PersonID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if _, ok := m.persons.persons[warden.PersonID]; ok {
		t.Error("person record should be removed")
	}
}
