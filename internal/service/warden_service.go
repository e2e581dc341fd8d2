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

var ErrWardenNotFound = errors.New("warden not found")

// WardenService manages wardens and their hostel assignments.
type WardenService interface {
	Create(ctx context.Context, req *dto.CreateWardenRequest) (*dto.WardenResponse, error)
	GetByID(ctx context.Context, personID uint) (*dto.WardenResponse, error)
	List(ctx context.Context) ([]dto.WardenResponse, error)
	Update(ctx context.Context, personID uint, req *dto.CreateWardenRequest) (*dto.WardenResponse, error)
	Delete(ctx context.Context, personID uint) error
}

type wardenService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewWardenService(repo *repository.Repository, logger *zap.Logger) WardenService {
	return &wardenService{repo: repo, logger: logger}
}

func (s *wardenService) Create(ctx context.Context, req *dto.CreateWardenRequest) (*dto.WardenResponse, error) {
	if req.HostelAssignment != nil {
		if _, err := s.repo.Hostel.GetByID(ctx, req.HostelAssignment.HostelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHostelNotFound
			}
			return nil, err
		}
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

	person := &model.Person{
		Name:       req.Name,
		PersonType: model.PersonTypeWarden,
		ContactNo:  req.ContactNo,
	}
	if req.PersonalAddress != nil {
		person.PersonalAddress = addressFromRequest(req.PersonalAddress)
	}
	if err := txRepo.Person.Create(ctx, person); err != nil {
		rollback(tx)
		s.logger.Error("create person failed", zap.Error(err))
		return nil, err
	}

	warden := &model.Warden{PersonID: person.ID}
	if err := txRepo.Warden.Create(ctx, warden); err != nil {
		rollback(tx)
		s.logger.Error("create warden failed", zap.Error(err))
		return nil, err
	}

	if req.HostelAssignment != nil {
		assignment := &model.HostelWardenAssignment{
			WardenID:       warden.ID,
			HostelID:       req.HostelAssignment.HostelID,
			AssignmentDate: req.HostelAssignment.AssignmentDate,
			EndDate:        req.HostelAssignment.EndDate,
		}
		if err := txRepo.Assignment.Create(ctx, assignment); err != nil {
			rollback(tx)
			s.logger.Error("create assignment failed", zap.Error(err))
			return nil, err
		}
	}

	if err := commit(tx); err != nil {
		s.logger.Error("commit transaction failed", zap.Error(err))
		return nil, err
	}

	return s.detail(ctx, person.ID)
}

func (s *wardenService) GetByID(ctx context.Context, personID uint) (*dto.WardenResponse, error) {
	return s.detail(ctx, personID)
}

func (s *wardenService) List(ctx context.Context) ([]dto.WardenResponse, error) {
	wardens, err := s.repo.Warden.List(ctx)
	if err != nil {
		s.logger.Error("list wardens failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.WardenResponse, 0, len(wardens))
	for i := range wardens {
		result = append(result, *dto.NewWardenResponse(&wardens[i]))
	}
	return result, nil
}

// Update rewrites the person fields and, when an assignment is supplied
// for a different hostel, closes the current assignment and opens the new
// one. A warden holds at most one open assignment.
func (s *wardenService) Update(ctx context.Context, personID uint, req *dto.CreateWardenRequest) (*dto.WardenResponse, error) {
	warden, err := s.repo.Warden.GetByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWardenNotFound
		}
		s.logger.Error("load warden failed", zap.Uint("personId", personID), zap.Error(err))
		return nil, err
	}

	if req.HostelAssignment != nil {
		if _, err := s.repo.Hostel.GetByID(ctx, req.HostelAssignment.HostelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHostelNotFound
			}
			return nil, err
		}
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

	person := &model.Person{ID: personID, Name: req.Name, ContactNo: req.ContactNo}
	if err := txRepo.Person.Update(ctx, person); err != nil {
		rollback(tx)
		s.logger.Error("update person failed", zap.Uint("personId", personID), zap.Error(err))
		return nil, err
	}

	if req.PersonalAddress != nil {
		address := addressFromRequest(req.PersonalAddress)
		address.PersonID = personID
		if err := txRepo.Person.UpsertAddress(ctx, address); err != nil {
			rollback(tx)
			s.logger.Error("upsert address failed", zap.Uint("personId", personID), zap.Error(err))
			return nil, err
		}
	}

	if req.HostelAssignment != nil {
		if err := s.reassign(ctx, txRepo, warden.ID, req.HostelAssignment); err != nil {
			rollback(tx)
			return nil, err
		}
	}

	if err := commit(tx); err != nil {
		s.logger.Error("commit transaction failed", zap.Error(err))
		return nil, err
	}

	return s.detail(ctx, personID)
}

// Delete removes the person record; the warden row and its assignments go
// with it through the cascade.
func (s *wardenService) Delete(ctx context.Context, personID uint) error {
	if _, err := s.repo.Warden.GetByPersonID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWardenNotFound
		}
		s.logger.Error("load warden failed", zap.Uint("personId", personID), zap.Error(err))
		return err
	}

	if err := s.repo.Person.Delete(ctx, personID); err != nil {
		s.logger.Error("delete warden failed", zap.Uint("personId", personID), zap.Error(err))
		return err
	}
	return nil
}

func (s *wardenService) detail(ctx context.Context, personID uint) (*dto.WardenResponse, error) {
	warden, err := s.repo.Warden.GetDetailByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWardenNotFound
		}
		s.logger.Error("load warden failed", zap.Uint("personId", personID), zap.Error(err))
		return nil, err
	}
	return dto.NewWardenResponse(warden), nil
}

func (s *wardenService) reassign(ctx context.Context, txRepo *repository.Repository, wardenID uint, req *dto.HostelAssignmentRequest) error {
	current, err := txRepo.Assignment.GetActiveByWarden(ctx, wardenID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load active assignment failed", zap.Uint("wardenId", wardenID), zap.Error(err))
		return err
	}

	if current != nil {
		if current.HostelID == req.HostelID {
			return nil
		}
		if err := txRepo.Assignment.Close(ctx, current.ID, time.Now()); err != nil {
			s.logger.Error("close assignment failed", zap.Uint("assignmentId", current.ID), zap.Error(err))
			return err
		}
	}

	assignment := &model.HostelWardenAssignment{
		WardenID:       wardenID,
		HostelID:       req.HostelID,
		AssignmentDate: req.AssignmentDate,
		EndDate:        req.EndDate,
	}
	if err := txRepo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("create assignment failed", zap.Uint("wardenId", wardenID), zap.Error(err))
		return err
	}
	return nil
}
