package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByPersonID(ctx context.Context, personID uint) (*model.Student, error)
	GetDetailByPersonID(ctx context.Context, personID uint) (*model.Student, error)
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	List(ctx context.Context, unallocated bool) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Count(ctx context.Context) (int64, error)
}

type studentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByPersonID(ctx context.Context, personID uint) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Where("person_id = ?", personID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetDetailByPersonID loads a student with address, allocation history
// down to the hostel, and bills.
func (r *studentRepo) GetDetailByPersonID(ctx context.Context, personID uint) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Preload("RoomAllocations", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date DESC")
		}).
		Preload("RoomAllocations.Room.Hostel").
		Preload("MessBills", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_generation_date DESC")
		}).
		Where("person_id = ?", personID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Person").
		First(&student, id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// List returns students with person and current allocation. When
// unallocated is set, only students without an active allocation are
// returned.
func (r *studentRepo) List(ctx context.Context, unallocated bool) ([]model.Student, error) {
	q := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Preload("RoomAllocations", "end_date IS NULL").
		Preload("RoomAllocations.Room.Hostel")
	if unallocated {
		q = q.Where("NOT EXISTS (SELECT 1 FROM room_allocations ra WHERE ra.student_id = students.id AND ra.end_date IS NULL)")
	}
	var students []model.Student
	if err := q.Order("id").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).
		Model(student).
		Select("Remark", "EmergencyContact", "FatherContact", "MotherContact").
		Updates(student).Error
}

func (r *studentRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&n).Error
	return n, err
}
