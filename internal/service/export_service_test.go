package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

func setupExportService() (ExportService, *mocks) {
	m := newMocks()
	dashboard := NewDashboardService(m.repo(), nil, time.Minute, zap.NewNop())
	svc := NewExportService(m.repo(), dashboard, zap.NewNop())
	return svc, m
}

func TestExportService_BillsReport(t *testing.T) {
	svc, m := setupExportService()
	student := m.addStudent("Alice")

	bill := m.addBill(student.ID, 2500, 100, model.BillStatusGenerated)
	bill.Student = student
	bill.BillGenerationDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	bill.DueDate = time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)

	buf, filename, err := svc.BillsReport(context.Background())
	if err != nil {
		t.Fatalf("BillsReport should succeed: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("exported buffer should not be empty")
	}
	if !strings.HasPrefix(filename, "mess_bills_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename: %q", filename)
	}
	// xlsx files are zip archives and start with PK.
	header := buf.Bytes()[:2]
	if header[0] != 0x50 || header[1] != 0x4B {
		t.Error("output is not a valid xlsx file (should start with PK)")
	}
}

func TestExportService_BillsReport_Empty(t *testing.T) {
	svc, _ := setupExportService()

	buf, _, err := svc.BillsReport(context.Background())
	if err != nil {
		t.Fatalf("BillsReport should succeed with no bills: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("exported buffer should not be empty")
	}
}

func TestExportService_OccupancyReport(t *testing.T) {
	svc, m := setupExportService()
	m.addHostel("North Wing", model.RoomTypeSingle, model.RoomTypeDouble)
	student := m.addStudent("Alice")
	m.allocate(student.ID, 1, "2025-2026")

	buf, filename, err := svc.OccupancyReport(context.Background())
	if err != nil {
		t.Fatalf("OccupancyReport should succeed: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("exported buffer should not be empty")
	}
	if !strings.HasPrefix(filename, "occupancy_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("unexpected filename: %q", filename)
	}
}
