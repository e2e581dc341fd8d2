package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KrishSharma007/hostel-management/internal/model"
)

type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	GetByID(ctx context.Context, id uint) (*model.Person, error)
	Update(ctx context.Context, person *model.Person) error
	UpsertAddress(ctx context.Context, address *model.PersonalAddress) error
	Delete(ctx context.Context, id uint) error
}

type personRepo struct {
	db *gorm.DB
}

func NewPersonRepo(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepo) GetByID(ctx context.Context, id uint) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		Preload("PersonalAddress").
		First(&person, id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) Update(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).
		Model(person).
		Select("Name", "ContactNo").
		Updates(person).Error
}

// UpsertAddress inserts the person's address or overwrites it when one
// already exists. Each person has at most one address row.
func (r *personRepo) UpsertAddress(ctx context.Context, address *model.PersonalAddress) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "person_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"h_no", "street", "city", "state", "pincode"}),
		}).
		Create(address).Error
}

func (r *personRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Person{}, id).Error
}
