package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.HostelWardenAssignment) error
	GetByID(ctx context.Context, id uint) (*model.HostelWardenAssignment, error)
	GetActiveByWarden(ctx context.Context, wardenID uint) (*model.HostelWardenAssignment, error)
	Close(ctx context.Context, id uint, endDate time.Time) error
	List(ctx context.Context) ([]model.HostelWardenAssignment, error)
	ListByHostel(ctx context.Context, hostelID uint) ([]model.HostelWardenAssignment, error)
	ListByWarden(ctx context.Context, wardenID uint) ([]model.HostelWardenAssignment, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.HostelWardenAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id uint) (*model.HostelWardenAssignment, error) {
	var assignment model.HostelWardenAssignment
	err := r.db.WithContext(ctx).
		Preload("Warden.Person").
		Preload("Hostel").
		First(&assignment, id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) GetActiveByWarden(ctx context.Context, wardenID uint) (*model.HostelWardenAssignment, error) {
	var assignment model.HostelWardenAssignment
	err := r.db.WithContext(ctx).
		Where("warden_id = ? AND end_date IS NULL", wardenID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) Close(ctx context.Context, id uint, endDate time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.HostelWardenAssignment{}).
		Where("id = ?", id).
		Update("end_date", endDate).Error
}

func (r *assignmentRepo) List(ctx context.Context) ([]model.HostelWardenAssignment, error) {
	var assignments []model.HostelWardenAssignment
	err := r.db.WithContext(ctx).
		Preload("Warden.Person").
		Preload("Hostel").
		Order("assignment_date DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByHostel returns a hostel's assignment history, newest first.
func (r *assignmentRepo) ListByHostel(ctx context.Context, hostelID uint) ([]model.HostelWardenAssignment, error) {
	var assignments []model.HostelWardenAssignment
	err := r.db.WithContext(ctx).
		Preload("Warden.Person").
		Where("hostel_id = ?", hostelID).
		Order("assignment_date DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByWarden returns a warden's assignment history, newest first.
func (r *assignmentRepo) ListByWarden(ctx context.Context, wardenID uint) ([]model.HostelWardenAssignment, error) {
	var assignments []model.HostelWardenAssignment
	err := r.db.WithContext(ctx).
		Preload("Hostel").
		Where("warden_id = ?", wardenID).
		Order("assignment_date DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
