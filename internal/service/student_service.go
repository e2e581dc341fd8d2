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
	ErrStudentNotFound = errors.New("student not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is at full capacity")
)

// StudentService manages students, their person records and their room
// allocations.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, personID uint) (*dto.StudentResponse, error)
	List(ctx context.Context, unallocated bool) ([]dto.StudentResponse, error)
	Update(ctx context.Context, personID uint, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, personID uint) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// Create inserts the person, the student record and, when requested, the
// initial room allocation in one transaction.
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
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
		PersonType: model.PersonTypeStudent,
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

	student := &model.Student{
		PersonID:         person.ID,
		Remark:           req.Remark,
		EmergencyContact: req.EmergencyContact,
		FatherContact:    req.FatherContact,
		MotherContact:    req.MotherContact,
	}
	if err := txRepo.Student.Create(ctx, student); err != nil {
		rollback(tx)
		s.logger.Error("create student failed", zap.Error(err))
		return nil, err
	}

	if req.RoomAllocation != nil {
		if err := s.allocateRoom(ctx, txRepo, student.ID, req.RoomAllocation); err != nil {
			rollback(tx)
			return nil, err
		}
	}

	if err := commit(tx); err != nil {
		s.logger.Error("commit transaction failed", zap.Error(err))
		return nil, err
	}

	return s.detail(ctx, person.ID)
}

func (s *studentService) GetByID(ctx context.Context, personID uint) (*dto.StudentResponse, error) {
	return s.detail(ctx, personID)
}

func (s *studentService) List(ctx context.Context, unallocated bool) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.List(ctx, unallocated)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *dto.NewStudentResponse(&students[i]))
	}
	return result, nil
}

// Update rewrites the person and student fields, upserts the address and,
// when a room allocation is supplied, closes the current allocation and
// opens the new one under the same capacity check as Create.
func (s *studentService) Update(ctx context.Context, personID uint, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("load student failed", zap.Uint("personId", personID), zap.Error(err))
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

	student.Remark = req.Remark
	student.EmergencyContact = req.EmergencyContact
	student.FatherContact = req.FatherContact
	student.MotherContact = req.MotherContact
	if err := txRepo.Student.Update(ctx, student); err != nil {
		rollback(tx)
		s.logger.Error("update student failed", zap.Uint("personId", personID), zap.Error(err))
		return nil, err
	}

	if req.RoomAllocation != nil {
		if err := s.reallocateRoom(ctx, txRepo, student.ID, req.RoomAllocation); err != nil {
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

// Delete removes the person record; the student row, address, allocations
// and bills go with it through the cascade.
func (s *studentService) Delete(ctx context.Context, personID uint) error {
	if _, err := s.repo.Student.GetByPersonID(ctx, personID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("load student failed", zap.Uint("personId", personID), zap.Error(err))
		return err
	}

	if err := s.repo.Person.Delete(ctx, personID); err != nil {
		s.logger.Error("delete student failed", zap.Uint("personId", personID), zap.Error(err))
		return err
	}
	return nil
}

func (s *studentService) detail(ctx context.Context, personID uint) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetDetailByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("load student failed", zap.Uint("personId", personID), zap.Error(err))
		return nil, err
	}
	return dto.NewStudentResponse(student), nil
}

// allocateRoom opens an allocation after checking capacity. The room row
// is locked for the rest of the transaction so concurrent allocations
// serialize on the same check.
func (s *studentService) allocateRoom(ctx context.Context, txRepo *repository.Repository, studentID uint, req *dto.AllocationRequest) error {
	room, err := txRepo.Room.GetForUpdate(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		s.logger.Error("lock room failed", zap.Uint("roomId", req.RoomID), zap.Error(err))
		return err
	}

	occupied, err := txRepo.Allocation.CountActiveByRoom(ctx, room.ID)
	if err != nil {
		s.logger.Error("count allocations failed", zap.Uint("roomId", room.ID), zap.Error(err))
		return err
	}
	if occupied >= int64(room.Capacity) {
		return ErrRoomFull
	}

	allocation := &model.RoomAllocation{
		StudentID:    studentID,
		RoomID:       room.ID,
		AcademicYear: req.AcademicYear,
		StartDate:    req.StartDate,
	}
	if err := txRepo.Allocation.Create(ctx, allocation); err != nil {
		s.logger.Error("create allocation failed", zap.Uint("roomId", room.ID), zap.Error(err))
		return err
	}
	return nil
}

// reallocateRoom closes the student's open allocation, if any, before
// opening the requested one. Moving within the same room is a no-op.
func (s *studentService) reallocateRoom(ctx context.Context, txRepo *repository.Repository, studentID uint, req *dto.AllocationRequest) error {
	current, err := txRepo.Allocation.GetActiveByStudent(ctx, studentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load active allocation failed", zap.Uint("studentId", studentID), zap.Error(err))
		return err
	}

	if current != nil {
		if current.RoomID == req.RoomID {
			return nil
		}
		if err := txRepo.Allocation.Close(ctx, current.ID, time.Now()); err != nil {
			s.logger.Error("close allocation failed", zap.Uint("allocationId", current.ID), zap.Error(err))
			return err
		}
	}

	return s.allocateRoom(ctx, txRepo, studentID, req)
}

func addressFromRequest(req *dto.AddressRequest) *model.PersonalAddress {
	return &model.PersonalAddress{
		HNo:     req.HNo,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
	}
}
