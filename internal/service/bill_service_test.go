package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/repository"
)

func setupBillService() (BillService, *mocks) {
	m := newMocks()
	svc := NewBillService(m.repo(), zap.NewNop())
	return svc, m
}

func floatPtr(v float64) *float64 { return &v }

func billReq(studentID uint, amount float64, status string) *dto.CreateBillRequest {
	return &dto.CreateBillRequest{
		StudentID:          studentID,
		BillAmount:         amount,
		BillGenerationDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		DueDate:            time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		Status:             status,
	}
}

func TestBillService_Create(t *testing.T) {
	svc, m := setupBillService()
	student := m.addStudent("Alice")

	req := billReq(student.ID, 2500, "GENERATED")
	req.Fine = floatPtr(100)

	bill, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if bill.StudentID != student.ID {
		t.Errorf("bill should carry student role id %d, got %d", student.ID, bill.StudentID)
	}
	if bill.Fine != 100 {
		t.Errorf("fine not stored, got %v", bill.Fine)
	}
}

func TestBillService_Create_DefaultFine(t *testing.T) {
	svc, m := setupBillService()
	student := m.addStudent("Alice")

	bill, err := svc.Create(context.Background(), billReq(student.ID, 2500, "GENERATED"))
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if bill.Fine != 0 {
		t.Errorf("fine should default to zero, got %v", bill.Fine)
	}
}

func TestBillService_Create_StudentNotFound(t *testing.T) {
	svc, _ := setupBillService()

	_, err := svc.Create(context.Background(), billReq(42, 2500, "GENERATED"))
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got: %v", err)
	}
}

func TestBillService_List_Filters(t *testing.T) {
	svc, m := setupBillService()
	alice := m.addStudent("Alice")
	bob := m.addStudent("Bob")

	mustCreate := func(req *dto.CreateBillRequest) {
		t.Helper()
		if _, err := svc.Create(context.Background(), req); err != nil {
			t.Fatalf("Create should succeed: %v", err)
		}
	}
	mustCreate(billReq(alice.ID, 2500, "GENERATED"))
	mustCreate(billReq(alice.ID, 2500, "PAID"))
	mustCreate(billReq(bob.ID, 2500, "GENERATED"))

	paid, err := svc.List(context.Background(), repository.BillFilter{Status: "PAID"})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(paid) != 1 {
		t.Errorf("expected 1 paid bill, got %d", len(paid))
	}

	aliceBills, err := svc.List(context.Background(), repository.BillFilter{StudentID: alice.ID})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(aliceBills) != 2 {
		t.Errorf("expected 2 bills for Alice, got %d", len(aliceBills))
	}

	both, err := svc.List(context.Background(), repository.BillFilter{Status: "GENERATED", StudentID: alice.ID})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(both) != 1 {
		t.Errorf("expected 1 generated bill for Alice, got %d", len(both))
	}
}

func TestBillService_Update(t *testing.T) {
	svc, m := setupBillService()
	student := m.addStudent("Alice")

	created, err := svc.Create(context.Background(), billReq(student.ID, 2500, "GENERATED"))
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	deposit := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateBillRequest{
		Status:          "PAID",
		Fine:            floatPtr(50),
		BillDepositDate: &deposit,
	})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if updated.Status != "PAID" {
		t.Errorf("status not updated, got %q", updated.Status)
	}
	if updated.Fine != 50 {
		t.Errorf("fine not updated, got %v", updated.Fine)
	}
	if updated.BillDepositDate == nil || !updated.BillDepositDate.Equal(deposit) {
		t.Errorf("deposit date not stored: %v", updated.BillDepositDate)
	}
	// Fields absent from the request keep their stored values.
	if updated.BillAmount != 2500 {
		t.Errorf("bill amount should be untouched, got %v", updated.BillAmount)
	}
}

func TestBillService_Update_NotFound(t *testing.T) {
	svc, _ := setupBillService()

	_, err := svc.Update(context.Background(), 42, &dto.UpdateBillRequest{Status: "PAID"})
	if !errors.Is(err, ErrBillNotFound) {
		t.Errorf("expected ErrBillNotFound, got: %v", err)
	}
}

func TestBillService_Delete(t *testing.T) {
	svc, m := setupBillService()
	student := m.addStudent("Alice")

	created, err := svc.Create(context.Background(), billReq(student.ID, 2500, "GENERATED"))
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrBillNotFound) {
		t.Errorf("expected ErrBillNotFound after delete, got: %v", err)
	}
}
