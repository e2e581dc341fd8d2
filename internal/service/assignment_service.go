package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/dto"
	"github.com/KrishSharma007/hostel-management/internal/model"
	"github.com/KrishSharma007/hostel-management/internal/repository"
)

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAssignmentClosed   = errors.New("assignment is already closed")
)

// AssignmentService manages hostel-warden assignments directly, outside
// the warden create/update flow.
type AssignmentService interface {
	Create(ctx context.Context, req *dto.CreateWardenAssignmentRequest) (*model.HostelWardenAssignment, error)
	List(ctx context.Context) ([]model.HostelWardenAssignment, error)
	ListByHostel(ctx context.Context, hostelID uint) ([]model.HostelWardenAssignment, error)
	ListByWarden(ctx context.Context, wardenPersonID uint) ([]model.HostelWardenAssignment, error)
	Update(ctx context.Context, id uint, req *dto.UpdateWardenAssignmentRequest) (*model.HostelWardenAssignment, error)
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

// Create opens an assignment for the warden identified by person id. An
// existing open assignment is closed first, so at most one stays active
// per warden.
func (s *assignmentService) Create(ctx context.Context, req *dto.CreateWardenAssignmentRequest) (*model.HostelWardenAssignment, error) {
	warden, err := s.repo.Warden.GetByPersonID(ctx, req.WardenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWardenNotFound
		}
		s.logger.Error("load warden failed", zap.Uint("personId", req.WardenID), zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Hostel.GetByID(ctx, req.HostelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("load hostel failed", zap.Uint("hostelId", req.HostelID), zap.Error(err))
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("begin transaction failed", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if req.EndDate == nil {
		current, err := txRepo.Assignment.GetActiveByWarden(ctx, warden.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			rollback(tx)
			s.logger.Error("load active assignment failed", zap.Uint("wardenId", warden.ID), zap.Error(err))
			return nil, err
		}
		if current != nil {
			if err := txRepo.Assignment.Close(ctx, current.ID, time.Now()); err != nil {
				rollback(tx)
				s.logger.Error("close assignment failed", zap.Uint("assignmentId", current.ID), zap.Error(err))
				return nil, err
			}
		}
	}

	assignment := &model.HostelWardenAssignment{
		WardenID:       warden.ID,
		HostelID:       req.HostelID,
		AssignmentDate: req.AssignmentDate,
		EndDate:        req.EndDate,
	}
	if err := txRepo.Assignment.Create(ctx, assignment); err != nil {
		rollback(tx)
		s.logger.Error("create assignment failed", zap.Uint("wardenId", warden.ID), zap.Error(err))
		return nil, err
	}

	if err := commit(tx); err != nil {
		s.logger.Error("commit transaction failed", zap.Error(err))
		return nil, err
	}

	return s.repo.Assignment.GetByID(ctx, assignment.ID)
}

func (s *assignmentService) List(ctx context.Context) ([]model.HostelWardenAssignment, error) {
	assignments, err := s.repo.Assignment.List(ctx)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

// ListByHostel returns a hostel's assignment history, newest first.
func (s *assignmentService) ListByHostel(ctx context.Context, hostelID uint) ([]model.HostelWardenAssignment, error) {
	if _, err := s.repo.Hostel.GetByID(ctx, hostelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		s.logger.Error("load hostel failed", zap.Uint("hostelId", hostelID), zap.Error(err))
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByHostel(ctx, hostelID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Uint("hostelId", hostelID), zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

// ListByWarden returns the assignment history of the warden identified by
// person id, newest first.
func (s *assignmentService) ListByWarden(ctx context.Context, wardenPersonID uint) ([]model.HostelWardenAssignment, error) {
	warden, err := s.repo.Warden.GetByPersonID(ctx, wardenPersonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWardenNotFound
		}
		s.logger.Error("load warden failed", zap.Uint("personId", wardenPersonID), zap.Error(err))
		return nil, err
	}

	assignments, err := s.repo.Assignment.ListByWarden(ctx, warden.ID)
	if err != nil {
		s.logger.Error("list assignments failed", zap.Uint("wardenId", warden.ID), zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

// Update closes an open assignment. Closed assignments stay closed.
func (s *assignmentService) Update(ctx context.Context, id uint, req *dto.UpdateWardenAssignmentRequest) (*model.HostelWardenAssignment, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("load assignment failed", zap.Uint("assignmentId", id), zap.Error(err))
		return nil, err
	}
	if assignment.EndDate != nil {
		return nil, ErrAssignmentClosed
	}

	if err := s.repo.Assignment.Close(ctx, id, req.EndDate); err != nil {
		s.logger.Error("close assignment failed", zap.Uint("assignmentId", id), zap.Error(err))
		return nil, err
	}

	return s.repo.Assignment.GetByID(ctx, id)
}
