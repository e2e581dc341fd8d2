package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type DutyRepository interface {
	Create(ctx context.Context, duty *model.AttendantDuty) error
	CreateBatch(ctx context.Context, duties []model.AttendantDuty) error
	GetByID(ctx context.Context, id uint) (*model.AttendantDuty, error)
	List(ctx context.Context) ([]model.AttendantDuty, error)
	ListByAttendant(ctx context.Context, attendantID uint) ([]model.AttendantDuty, error)
	ListByHostel(ctx context.Context, hostelID uint) ([]model.AttendantDuty, error)
	Update(ctx context.Context, duty *model.AttendantDuty) error
	Delete(ctx context.Context, id uint) error
	DeleteByAttendant(ctx context.Context, attendantID uint) error
}

type dutyRepo struct {
	db *gorm.DB
}

func NewDutyRepo(db *gorm.DB) DutyRepository {
	return &dutyRepo{db: db}
}

func (r *dutyRepo) Create(ctx context.Context, duty *model.AttendantDuty) error {
	return r.db.WithContext(ctx).Create(duty).Error
}

func (r *dutyRepo) CreateBatch(ctx context.Context, duties []model.AttendantDuty) error {
	if len(duties) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&duties).Error
}

func (r *dutyRepo) GetByID(ctx context.Context, id uint) (*model.AttendantDuty, error) {
	var duty model.AttendantDuty
	err := r.db.WithContext(ctx).
		Preload("Attendant.Person").
		Preload("Hostel").
		First(&duty, id).Error
	if err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *dutyRepo) List(ctx context.Context) ([]model.AttendantDuty, error) {
	var duties []model.AttendantDuty
	err := r.db.WithContext(ctx).
		Preload("Attendant.Person").
		Preload("Hostel").
		Order("duty_date DESC").
		Find(&duties).Error
	if err != nil {
		return nil, err
	}
	return duties, nil
}

// ListByAttendant returns an attendant's duty roster, newest first.
func (r *dutyRepo) ListByAttendant(ctx context.Context, attendantID uint) ([]model.AttendantDuty, error) {
	var duties []model.AttendantDuty
	err := r.db.WithContext(ctx).
		Preload("Hostel").
		Where("attendant_id = ?", attendantID).
		Order("duty_date DESC").
		Find(&duties).Error
	if err != nil {
		return nil, err
	}
	return duties, nil
}

// ListByHostel returns the duties scheduled in a hostel, newest first.
func (r *dutyRepo) ListByHostel(ctx context.Context, hostelID uint) ([]model.AttendantDuty, error) {
	var duties []model.AttendantDuty
	err := r.db.WithContext(ctx).
		Preload("Attendant.Person").
		Where("hostel_id = ?", hostelID).
		Order("duty_date DESC").
		Find(&duties).Error
	if err != nil {
		return nil, err
	}
	return duties, nil
}

func (r *dutyRepo) Update(ctx context.Context, duty *model.AttendantDuty) error {
	return r.db.WithContext(ctx).
		Model(duty).
		Select("DutyType", "ShiftType", "DutyDate").
		Updates(duty).Error
}

func (r *dutyRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.AttendantDuty{}, id).Error
}

// DeleteByAttendant clears the attendant's roster before a bulk rewrite.
func (r *dutyRepo) DeleteByAttendant(ctx context.Context, attendantID uint) error {
	return r.db.WithContext(ctx).
		Where("attendant_id = ?", attendantID).
		Delete(&model.AttendantDuty{}).Error
}
