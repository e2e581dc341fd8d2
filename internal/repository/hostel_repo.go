package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type HostelRepository interface {
	Create(ctx context.Context, hostel *model.Hostel) error
	GetByID(ctx context.Context, id uint) (*model.Hostel, error)
	GetDetail(ctx context.Context, id uint) (*model.Hostel, error)
	List(ctx context.Context) ([]model.Hostel, error)
	ListWithOccupancy(ctx context.Context) ([]model.Hostel, error)
	Update(ctx context.Context, hostel *model.Hostel) error
	UpdateAddress(ctx context.Context, address *model.HostelAddress) error
	Delete(ctx context.Context, id uint) error
}

type hostelRepo struct {
	db *gorm.DB
}

func NewHostelRepo(db *gorm.DB) HostelRepository {
	return &hostelRepo{db: db}
}

func (r *hostelRepo) Create(ctx context.Context, hostel *model.Hostel) error {
	return r.db.WithContext(ctx).Create(hostel).Error
}

func (r *hostelRepo) GetByID(ctx context.Context, id uint) (*model.Hostel, error) {
	var hostel model.Hostel
	err := r.db.WithContext(ctx).
		Preload("HostelAddress").
		First(&hostel, id).Error
	if err != nil {
		return nil, err
	}
	return &hostel, nil
}

// GetDetail loads a hostel with rooms, current allocations, current
// warden assignments and the duty roster.
func (r *hostelRepo) GetDetail(ctx context.Context, id uint) (*model.Hostel, error) {
	var hostel model.Hostel
	err := r.db.WithContext(ctx).
		Preload("HostelAddress").
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Rooms.Allocations", "end_date IS NULL").
		Preload("Rooms.Allocations.Student.Person").
		Preload("WardenAssignments", "end_date IS NULL").
		Preload("WardenAssignments.Warden.Person").
		Preload("AttendantDuties", func(db *gorm.DB) *gorm.DB {
			return db.Order("duty_date DESC")
		}).
		Preload("AttendantDuties.Attendant.Person").
		First(&hostel, id).Error
	if err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (r *hostelRepo) List(ctx context.Context) ([]model.Hostel, error) {
	var hostels []model.Hostel
	err := r.db.WithContext(ctx).
		Preload("HostelAddress").
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		Preload("Rooms.Allocations", "end_date IS NULL").
		Preload("WardenAssignments", "end_date IS NULL").
		Preload("WardenAssignments.Warden.Person").
		Preload("AttendantDuties.Attendant.Person").
		Order("id").
		Find(&hostels).Error
	if err != nil {
		return nil, err
	}
	return hostels, nil
}

// ListWithOccupancy loads hostels with rooms and their active
// allocations only, for occupancy aggregation.
func (r *hostelRepo) ListWithOccupancy(ctx context.Context) ([]model.Hostel, error) {
	var hostels []model.Hostel
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		Preload("Rooms.Allocations", "end_date IS NULL").
		Order("id").
		Find(&hostels).Error
	if err != nil {
		return nil, err
	}
	return hostels, nil
}

func (r *hostelRepo) Update(ctx context.Context, hostel *model.Hostel) error {
	return r.db.WithContext(ctx).
		Model(hostel).
		Select("Name", "ContactNo").
		Updates(hostel).Error
}

func (r *hostelRepo) UpdateAddress(ctx context.Context, address *model.HostelAddress) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hostel_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"building", "street", "city", "state", "pincode", "landmark"}),
		}).
		Create(address).Error
}

func (r *hostelRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Hostel{}, id).Error
}
