package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type AllocationRepository interface {
	Create(ctx context.Context, allocation *model.RoomAllocation) error
	GetActiveByStudent(ctx context.Context, studentID uint) (*model.RoomAllocation, error)
	Close(ctx context.Context, id uint, endDate time.Time) error
	CountActiveByRoom(ctx context.Context, roomID uint) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type allocationRepo struct {
	db *gorm.DB
}

func NewAllocationRepo(db *gorm.DB) AllocationRepository {
	return &allocationRepo{db: db}
}

func (r *allocationRepo) Create(ctx context.Context, allocation *model.RoomAllocation) error {
	return r.db.WithContext(ctx).Create(allocation).Error
}

// GetActiveByStudent returns the student's open allocation, or
// gorm.ErrRecordNotFound when the student is unallocated.
func (r *allocationRepo) GetActiveByStudent(ctx context.Context, studentID uint) (*model.RoomAllocation, error) {
	var allocation model.RoomAllocation
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND end_date IS NULL", studentID).
		First(&allocation).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (r *allocationRepo) Close(ctx context.Context, id uint, endDate time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.RoomAllocation{}).
		Where("id = ?", id).
		Update("end_date", endDate).Error
}

func (r *allocationRepo) CountActiveByRoom(ctx context.Context, roomID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.RoomAllocation{}).
		Where("room_id = ? AND end_date IS NULL", roomID).
		Count(&n).Error
	return n, err
}

func (r *allocationRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.RoomAllocation{}).
		Where("end_date IS NULL").
		Count(&n).Error
	return n, err
}
