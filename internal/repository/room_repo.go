package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type RoomRepository interface {
	CreateBatch(ctx context.Context, rooms []model.Room) error
	GetByID(ctx context.Context, id uint) (*model.Room, error)
	GetForUpdate(ctx context.Context, id uint) (*model.Room, error)
	ListByHostel(ctx context.Context, hostelID uint) ([]model.Room, error)
	ListByHostelAndType(ctx context.Context, hostelID uint, roomType string) ([]model.Room, error)
	DeleteByIDs(ctx context.Context, ids []uint) error
	CountByType(ctx context.Context) (map[string]int, error)
}

type roomRepo struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) CreateBatch(ctx context.Context, rooms []model.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rooms).Error
}

func (r *roomRepo) GetByID(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// GetForUpdate loads a room under a row lock so a concurrent allocation
// in another transaction cannot slip past the capacity check.
func (r *roomRepo) GetForUpdate(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// ListByHostel returns all of a hostel's rooms with their active
// allocations and the allocated students.
func (r *roomRepo) ListByHostel(ctx context.Context, hostelID uint) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Preload("Allocations", "end_date IS NULL").
		Preload("Allocations.Student.Person").
		Where("hostel_id = ?", hostelID).
		Order("id").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListByHostelAndType returns a hostel's rooms of one type with their
// active allocations, oldest room first.
func (r *roomRepo) ListByHostelAndType(ctx context.Context, hostelID uint, roomType string) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).
		Preload("Allocations", "end_date IS NULL").
		Where("hostel_id = ? AND room_type = ?", hostelID, roomType).
		Order("id").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepo) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.Room{}, ids).Error
}

// CountByType tallies rooms per room type across all hostels.
func (r *roomRepo) CountByType(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		RoomType string
		N        int
	}
	err := r.db.WithContext(ctx).
		Model(&model.Room{}).
		Select("room_type, COUNT(*) AS n").
		Group("room_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.RoomType] = row.N
	}
	return counts, nil
}
