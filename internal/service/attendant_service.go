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

var ErrAttendantNotFound = errors.New("attendant not found")

// AttendantService manages attendants and their duty rosters.
type AttendantService interface {
	Create(ctx context.Context, req *dto.CreateAttendantRequest) (*dto.AttendantResponse, error)
	GetByID(ctx context.Context, personID uint) (*dto.AttendantResponse, error)
	List(ctx context.Context) ([]dto.AttendantResponse, error)
	Update(ctx context.Context, personID uint, req *dto.CreateAttendantRequest) (*dto.AttendantResponse, error)
	Delete(ctx context.Context, personID uint) error
}

type attendantService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewAttendantService(repo *repository.Repository, logger *zap.Logger) AttendantService {
	return &attendantService{repo: repo, logger: logger}
}

func (s *attendantService) Create(ctx context.Context, req *dto.CreateAttendantRequest) (*dto.AttendantResponse, error) {
	if err := s.checkHostels(ctx, req.Duties); err != nil {
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

	person := &model.Person{
		Name:       req.Name,
		PersonType: model.PersonTypeAttendant,
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

	attendant := &model.Attendant{PersonID: person.ID}
	if err := txRepo.Attendant.Create(ctx, attendant); err != nil {
		rollback(tx)
		s.logger.Error("create attendant failed", zap.Error(err))
		return nil, err
	}

	if err := txRepo.Duty.CreateBatch(ctx, dutiesFromRequests(attendant.ID, req.Duties)); err != nil {
		rollback(tx)
		s.logger.Error("create duties failed", zap.Error(err))
		return nil, err
	}

	if err := commit(tx); err != nil {
		s.logger.Error("commit transaction failed", zap.Error(err))
		return nil, err
	}

	return s.detail(ctx, person.ID)
}

func (s *attendantService) GetByID(ctx context.Context, personID uint) (*dto.AttendantResponse, error) {
	return s.detail(ctx, personID)
}

func (s *attendantService) List(ctx context.Context) ([]dto.AttendantResponse, error) {
	attendants, err := s.repo.Attendant.List(ctx)
	if err != nil {
		s.logger.Error("list attendants failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendantResponse, 0, len(attendants))
	for i := range attendants {
		result = append(result, *dto.NewAttendantResponse(&attendants[i]))
	}
	return result, nil
}

// Update rewrites the person fields and, when duties are supplied,
// replaces the whole roster with the supplied set.
func (s *attendantService) Update(ctx context.Context, personID uint, req *dto.CreateAttendantRequest) (*dto.AttendantResponse, error) {
	attendant, err := s.repo.Attendant.GetByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendantNotFound
		}
		s.logger.Error("load attendant failed", zap.Uint("personId", personID), zap.Error(err))
		return nil, err
	}

	if err := s.checkHostels(ctx, req.Duties); err != nil {
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

	if req.Duties != nil {
		if err := txRepo.Duty.DeleteByAttendant(ctx, attendant.ID); err != nil {
			rollback(tx)
			s.logger.Error("clear duties failed", zap.Uint("attendantId", attendant.ID), zap.Error(err))
			return nil, err
		}
		if err := txRepo.Duty.CreateBatch(ctx, dutiesFromRequests(attendant.ID, req.Duties)); err != nil {
			rollback(tx)
			s.logger.Error("create duties failed", zap.Uint("attendantId", attendant.ID), zap.Error(err))
			return nil, err
		}
	}

	if err := commit(tx); err != nil {
		s.logger.Error("commit transaction failed", zap.Error(err))
		return nil, err
	}

	return s.detail(ctx, personID)
}

// Delete removes the person record; the attendant row and its duties go
// with it through the cascade.
func (s *attendantService) Delete(ctx context.Context, personID uint) error {
	if _, err := s.repo.Attendant.GetByPersonID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendantNotFound
		}
		s.logger.Error("load attendant failed", zap.Uint("personId", personID), zap.Error(err))
		return err
	}

	if err := s.repo.Person.Delete(ctx, personID); err != nil {
		s.logger.Error("delete attendant failed", zap.Uint("personId", personID), zap.Error(err))
		return err
	}
	return nil
}

func (s *attendantService) detail(ctx context.Context, personID uint) (*dto.AttendantResponse, error) {
	attendant, err := s.repo.Attendant.GetDetailByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendantNotFound
		}
		s.logger.Error("load attendant failed", zap.Uint("personId", personID), zap.Error(err))
		return nil, err
	}
	return dto.NewAttendantResponse(attendant), nil
}

func (s *attendantService) checkHostels(ctx context.Context, duties []dto.DutyRequest) error {
	seen := make(map[uint]bool, len(duties))
	for _, duty := range duties {
		if seen[duty.HostelID] {
			continue
		}
		seen[duty.HostelID] = true
		if _, err := s.repo.Hostel.GetByID(ctx, duty.HostelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHostelNotFound
			}
			return err
		}
	}
	return nil
}

func dutiesFromRequests(attendantID uint, reqs []dto.DutyRequest) []model.AttendantDuty {
	duties := make([]model.AttendantDuty, 0, len(reqs))
	for _, req := range reqs {
		duties = append(duties, model.AttendantDuty{
			AttendantID: attendantID,
			HostelID:    req.HostelID,
			DutyType:    req.DutyType,
			ShiftType:   req.ShiftType,
			DutyDate:    req.DutyDate,
		})
	}
	return duties
}
