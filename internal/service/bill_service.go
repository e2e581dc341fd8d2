package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/model"
	"github.com/KrishSharma007/hostel-management/internal/repository"
)

var ErrBillNotFound = errors.New("bill not found")

// BillService manages mess bills. Unlike the person-keyed services, bill
// payloads carry the student role-table id.
type BillService interface {
	Create(ctx context.Context, req *dto.CreateBillRequest) (*model.MessBill, error)
	GetByID(ctx context.Context, id uint) (*model.MessBill, error)
	List(ctx context.Context, filter repository.BillFilter) ([]model.MessBill, error)
	Update(ctx context.Context, id uint, req *dto.UpdateBillRequest) (*model.MessBill, error)
	Delete(ctx context.Context, id uint) error
}

type billService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewBillService(repo *repository.Repository, logger *zap.Logger) BillService {
	return &billService{repo: repo, logger: logger}
}

func (s *billService) Create(ctx context.Context, req *dto.CreateBillRequest) (*model.MessBill, error) {
	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("load student failed", zap.Uint("studentId", req.StudentID), zap.Error(err))
		return nil, err
	}

	bill := &model.MessBill{
		StudentID:          req.StudentID,
		BillAmount:         req.BillAmount,
		BillGenerationDate: req.BillGenerationDate,
		DueDate:            req.DueDate,
		Status:             req.Status,
	}
	if req.Fine != nil {
		bill.Fine = *req.Fine
	}
	if err := s.repo.Bill.Create(ctx, bill); err != nil {
		s.logger.Error("create bill failed", zap.Uint("studentId", req.StudentID), zap.Error(err))
		return nil, err
	}

	return s.repo.Bill.GetByID(ctx, bill.ID)
}

func (s *billService) GetByID(ctx context.Context, id uint) (*model.MessBill, error) {
	bill, err := s.repo.Bill.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		s.logger.Error("load bill failed", zap.Uint("billId", id), zap.Error(err))
		return nil, err
	}
	return bill, nil
}

func (s *billService) List(ctx context.Context, filter repository.BillFilter) ([]model.MessBill, error) {
	bills, err := s.repo.Bill.List(ctx, filter)
	if err != nil {
		s.logger.Error("list bills failed", zap.Error(err))
		return nil, err
	}
	return bills, nil
}

func (s *billService) Update(ctx context.Context, id uint, req *dto.UpdateBillRequest) (*model.MessBill, error) {
	bill, err := s.repo.Bill.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		s.logger.Error("load bill failed", zap.Uint("billId", id), zap.Error(err))
		return nil, err
	}

	bill.Status = req.Status
	if req.Fine != nil {
		bill.Fine = *req.Fine
	}
	if req.BillGenerationDate != nil {
		bill.BillGenerationDate = *req.BillGenerationDate
	}
	if req.DueDate != nil {
		bill.DueDate = *req.DueDate
	}
	if req.BillDepositDate != nil {
		bill.BillDepositDate = req.BillDepositDate
	}
	if err := s.repo.Bill.Update(ctx, bill); err != nil {
		s.logger.Error("update bill failed", zap.Uint("billId", id), zap.Error(err))
		return nil, err
	}

	return s.repo.Bill.GetByID(ctx, id)
}

func (s *billService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Bill.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillNotFound
		}
		s.logger.Error("load bill failed", zap.Uint("billId", id), zap.Error(err))
		return err
	}

	if err := s.repo.Bill.Delete(ctx, id); err != nil {
		s.logger.Error("delete bill failed", zap.Uint("billId", id), zap.Error(err))
		return err
	}
	return nil
}
