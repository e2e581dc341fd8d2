package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

// BillFilter narrows List to one status and/or one student.
type BillFilter struct {
	Status    string
	StudentID uint
}

type BillRepository interface {
	Create(ctx context.Context, bill *model.MessBill) error
	GetByID(ctx context.Context, id uint) (*model.MessBill, error)
	List(ctx context.Context, filter BillFilter) ([]model.MessBill, error)
	ListAll(ctx context.Context) ([]model.MessBill, error)
	Update(ctx context.Context, bill *model.MessBill) error
	Delete(ctx context.Context, id uint) error
}

type billRepo struct {
	db *gorm.DB
}

func NewBillRepo(db *gorm.DB) BillRepository {
	return &billRepo{db: db}
}

func (r *billRepo) Create(ctx context.Context, bill *model.MessBill) error {
	return r.db.WithContext(ctx).Create(bill).Error
}

func (r *billRepo) GetByID(ctx context.Context, id uint) (*model.MessBill, error) {
	var bill model.MessBill
	err := r.db.WithContext(ctx).
		Preload("Student.Person").
		First(&bill, id).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepo) List(ctx context.Context, filter BillFilter) ([]model.MessBill, error) {
	q := r.db.WithContext(ctx).
		Preload("Student.Person").
		Order("bill_generation_date DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.StudentID != 0 {
		q = q.Where("student_id = ?", filter.StudentID)
	}
	var bills []model.MessBill
	if err := q.Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

// ListAll returns every bill without preloads, for aggregation.
func (r *billRepo) ListAll(ctx context.Context) ([]model.MessBill, error) {
	var bills []model.MessBill
	if err := r.db.WithContext(ctx).Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepo) Update(ctx context.Context, bill *model.MessBill) error {
	return r.db.WithContext(ctx).
		Model(bill).
		Select("BillAmount", "BillGenerationDate", "DueDate", "BillDepositDate", "Fine", "Status").
		Updates(bill).Error
}

func (r *billRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.MessBill{}, id).Error
}
