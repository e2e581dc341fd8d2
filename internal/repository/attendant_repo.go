package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type AttendantRepository interface {
	Create(ctx context.Context, attendant *model.Attendant) error
	GetByPersonID(ctx context.Context, personID uint) (*model.Attendant, error)
	GetDetailByPersonID(ctx context.Context, personID uint) (*model.Attendant, error)
	GetByID(ctx context.Context, id uint) (*model.Attendant, error)
	List(ctx context.Context) ([]model.Attendant, error)
}

type attendantRepo struct {
	db *gorm.DB
}

func NewAttendantRepo(db *gorm.DB) AttendantRepository {
	return &attendantRepo{db: db}
}

func (r *attendantRepo) Create(ctx context.Context, attendant *model.Attendant) error {
	return r.db.WithContext(ctx).Create(attendant).Error
}

func (r *attendantRepo) GetByPersonID(ctx context.Context, personID uint) (*model.Attendant, error) {
	var attendant model.Attendant
	err := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Where("person_id = ?", personID).
		First(&attendant).Error
	if err != nil {
		return nil, err
	}
	return &attendant, nil
}

// GetDetailByPersonID loads an attendant with its duty roster.
func (r *attendantRepo) GetDetailByPersonID(ctx context.Context, personID uint) (*model.Attendant, error) {
	var attendant model.Attendant
	err := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Preload("Duties", func(db *gorm.DB) *gorm.DB {
			return db.Order("duty_date DESC")
		}).
		Preload("Duties.Hostel").
		Where("person_id = ?", personID).
		First(&attendant).Error
	if err != nil {
		return nil, err
	}
	return &attendant, nil
}

func (r *attendantRepo) GetByID(ctx context.Context, id uint) (*model.Attendant, error) {
	var attendant model.Attendant
	err := r.db.WithContext(ctx).
		Preload("Person").
		First(&attendant, id).Error
	if err != nil {
		return nil, err
	}
	return &attendant, nil
}

func (r *attendantRepo) List(ctx context.Context) ([]model.Attendant, error) {
	var attendants []model.Attendant
	err := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Preload("Duties", func(db *gorm.DB) *gorm.DB {
			return db.Order("duty_date DESC")
		}).
		Preload("Duties.Hostel").
		Order("id").
		Find(&attendants).Error
	if err != nil {
		return nil, err
	}
	return attendants, nil
}
