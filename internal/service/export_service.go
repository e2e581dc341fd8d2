package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/KrishSharma007/hostel-management/internal/repository"
)

var ErrExportGenerateFail = errors.New("failed to generate export file")

// ExportService renders dashboard data as downloadable spreadsheets.
type ExportService interface {
	BillsReport(ctx context.Context) (*bytes.Buffer, string, error)
	OccupancyReport(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo      *repository.Repository
	dashboard DashboardService
	logger    *zap.Logger
}

func NewExportService(repo *repository.Repository, dashboard DashboardService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, dashboard: dashboard, logger: logger}
}

// BillsReport lists every mess bill with the billed student's name.
func (s *exportService) BillsReport(ctx context.Context) (*bytes.Buffer, string, error) {
	bills, err := s.repo.Bill.List(ctx, repository.BillFilter{})
	if err != nil {
		s.logger.Error("load bills failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Mess Bills"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "F", 16)
	f.SetColWidth(sheetName, "G", "G", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Bill ID", "Student", "Amount", "Fine", "Generated", "Due", "Status"}
	for i, header := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), header)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for _, bill := range bills {
		studentName := ""
		if bill.Student != nil && bill.Student.Person != nil {
			studentName = bill.Student.Person.Name
		}
		f.SetCellValue(sheetName, cell("A", row), bill.ID)
		f.SetCellValue(sheetName, cell("B", row), studentName)
		f.SetCellValue(sheetName, cell("C", row), bill.BillAmount)
		f.SetCellValue(sheetName, cell("D", row), bill.Fine)
		f.SetCellValue(sheetName, cell("E", row), bill.BillGenerationDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, cell("F", row), bill.DueDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, cell("G", row), bill.Status)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write spreadsheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("mess_bills_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// OccupancyReport lists per-hostel occupancy as the dashboard computes it.
func (s *exportService) OccupancyReport(ctx context.Context) (*bytes.Buffer, string, error) {
	summary, err := s.dashboard.OccupancySummary(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Occupancy"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "D", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "Hostel", "Total Rooms", "Occupants"}
	for i, header := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), header)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for _, hostel := range summary.Hostels {
		f.SetCellValue(sheetName, cell("A", row), hostel.ID)
		f.SetCellValue(sheetName, cell("B", row), hostel.Name)
		f.SetCellValue(sheetName, cell("C", row), hostel.TotalRooms)
		f.SetCellValue(sheetName, cell("D", row), hostel.Occupied)
		row++
	}

	summaryRow := row + 1
	f.SetCellValue(sheetName, cell("A", summaryRow), "Total")
	f.SetCellValue(sheetName, cell("C", summaryRow), summary.TotalRooms)
	f.SetCellValue(sheetName, cell("D", summaryRow), summary.OccupiedRooms)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write spreadsheet failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("occupancy_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
