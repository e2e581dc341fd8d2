package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type WardenRepository interface {
	Create(ctx context.Context, warden *model.Warden) error
	GetByPersonID(ctx context.Context, personID uint) (*model.Warden, error)
	GetDetailByPersonID(ctx context.Context, personID uint) (*model.Warden, error)
	GetByID(ctx context.Context, id uint) (*model.Warden, error)
	List(ctx context.Context) ([]model.Warden, error)
}

type wardenRepo struct {
	db *gorm.DB
}

func NewWardenRepo(db *gorm.DB) WardenRepository {
	return &wardenRepo{db: db}
}

func (r *wardenRepo) Create(ctx context.Context, warden *model.Warden) error {
	return r.db.WithContext(ctx).Create(warden).Error
}

func (r *wardenRepo) GetByPersonID(ctx context.Context, personID uint) (*model.Warden, error) {
	var warden model.Warden
	err := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Where("person_id = ?", personID).
		First(&warden).Error
	if err != nil {
		return nil, err
	}
	return &warden, nil
}

// GetDetailByPersonID loads a warden with its full assignment history.
func (r *wardenRepo) GetDetailByPersonID(ctx context.Context, personID uint) (*model.Warden, error) {
	var warden model.Warden
	err := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Preload("HostelAssignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assignment_date DESC")
		}).
		Preload("HostelAssignments.Hostel").
		Where("person_id = ?", personID).
		First(&warden).Error
	if err != nil {
		return nil, err
	}
	return &warden, nil
}

func (r *wardenRepo) GetByID(ctx context.Context, id uint) (*model.Warden, error) {
	var warden model.Warden
	err := r.db.WithContext(ctx).
		Preload("Person").
		First(&warden, id).Error
	if err != nil {
		return nil, err
	}
	return &warden, nil
}

func (r *wardenRepo) List(ctx context.Context) ([]model.Warden, error) {
	var wardens []model.Warden
	err := r.db.WithContext(ctx).
		Preload("Person.PersonalAddress").
		Preload("HostelAssignments", "end_date IS NULL").
		Preload("HostelAssignments.Hostel").
		Order("id").
		Find(&wardens).Error
	if err != nil {
		return nil, err
	}
	return wardens, nil
}
