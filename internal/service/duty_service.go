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

var ErrDutyNotFound = errors.New("duty not found")

// DutyService manages attendant duties directly, outside the attendant
// create/update flow.
type DutyService interface {
	Create(ctx context.Context, req *dto.CreateAttendantDutyRequest) (*model.AttendantDuty, error)
	List(ctx context.Context) ([]model.AttendantDuty, error)
	ListByAttendant(ctx context.Context, attendantPersonID uint) ([]model.AttendantDuty, error)
	ListByHostel(ctx context.Context, hostelID uint) ([]model.AttendantDuty, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAttendantDutyRequest) (*model.AttendantDuty, error)
	Delete(ctx context.Context, id uint) error
}

type dutyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewDutyService(repo *repository.Repository, logger *zap.Logger) DutyService {
	return &dutyService{repo: repo, logger: logger}
}

// Create records a duty for the attendant identified by person id.
func (s *dutyService) Create(ctx context.Context, req *dto.CreateAttendantDutyRequest) (*model.AttendantDuty, error) {
	attendant, err := s.repo.Attendant.GetByPersonID(ctx, req.AttendantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendantNotFound
		}
		s.logger.Error("load attendant failed", zap.Uint("personId", req.AttendantID), zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Hostel.GetByID(ctx, req.HostelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("load hostel failed", zap.Uint("hostelId", req.HostelID), zap.Error(err))
		return nil, err
	}

	duty := &model.AttendantDuty{
		AttendantID: attendant.ID,
		HostelID:    req.HostelID,
		DutyType:    req.DutyType,
		ShiftType:   req.ShiftType,
		DutyDate:    req.DutyDate,
	}
	if err := s.repo.Duty.Create(ctx, duty); err != nil {
		s.logger.Error("create duty failed", zap.Uint("attendantId", attendant.ID), zap.Error(err))
		return nil, err
	}

	return s.repo.Duty.GetByID(ctx, duty.ID)
}

func (s *dutyService) List(ctx context.Context) ([]model.AttendantDuty, error) {
	duties, err := s.repo.Duty.List(ctx)
	if err != nil {
		s.logger.Error("list duties failed", zap.Error(err))
		return nil, err
	}
	return duties, nil
}

// ListByAttendant returns the duty roster of the attendant identified by
// person id, newest first.
func (s *dutyService) ListByAttendant(ctx context.Context, attendantPersonID uint) ([]model.AttendantDuty, error) {
	attendant, err := s.repo.Attendant.GetByPersonID(ctx, attendantPersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendantNotFound
		}
		s.logger.Error("load attendant failed", zap.Uint("personId", attendantPersonID), zap.Error(err))
		return nil, err
	}

	duties, err := s.repo.Duty.ListByAttendant(ctx, attendant.ID)
	if err != nil {
		s.logger.Error("list duties failed", zap.Uint("attendantId", attendant.ID), zap.Error(err))
		return nil, err
	}
	return duties, nil
}

// ListByHostel returns the duties scheduled in a hostel, newest first.
func (s *dutyService) ListByHostel(ctx context.Context, hostelID uint) ([]model.AttendantDuty, error) {
	if _, err := s.repo.Hostel.GetByID(ctx, hostelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("load hostel failed", zap.Uint("hostelId", hostelID), zap.Error(err))
		return nil, err
	}

	duties, err := s.repo.Duty.ListByHostel(ctx, hostelID)
	if err != nil {
		s.logger.Error("list duties failed", zap.Uint("hostelId", hostelID), zap.Error(err))
		return nil, err
	}
	return duties, nil
}

func (s *dutyService) Update(ctx context.Context, id uint, req *dto.UpdateAttendantDutyRequest) (*model.AttendantDuty, error) {
	duty, err := s.repo.Duty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDutyNotFound
		}
		s.logger.Error("load duty failed", zap.Uint("dutyId", id), zap.Error(err))
		return nil, err
	}

	duty.DutyType = req.DutyType
	duty.ShiftType = req.ShiftType
	duty.DutyDate = req.DutyDate
	if err := s.repo.Duty.Update(ctx, duty); err != nil {
		s.logger.Error("update duty failed", zap.Uint("dutyId", id), zap.Error(err))
		return nil, err
	}

	return s.repo.Duty.GetByID(ctx, id)
}

func (s *dutyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Duty.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDutyNotFound
		}
		s.logger.Error("load duty failed", zap.Uint("dutyId", id), zap.Error(err))
		return err
	}

	if err := s.repo.Duty.Delete(ctx, id); err != nil {
		s.logger.Error("delete duty failed", zap.Uint("dutyId", id), zap.Error(err))
		return err
	}
	return nil
}
