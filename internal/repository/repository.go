package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every entity repository behind one handle.
type Repository struct {
	db *gorm.DB

	Person     PersonRepository
	Student    StudentRepository
	Warden     WardenRepository
	Attendant  AttendantRepository
	Hostel     HostelRepository
	Room       RoomRepository
	Allocation AllocationRepository
	Assignment AssignmentRepository
	Duty       DutyRepository
	Bill       BillRepository
}

// NewRepository builds the repository aggregate on a DB handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Person:     NewPersonRepo(db),
		Student:    NewStudentRepo(db),
		Warden:     NewWardenRepo(db),
		Attendant:  NewAttendantRepo(db),
		Hostel:     NewHostelRepo(db),
		Room:       NewRoomRepo(db),
		Allocation: NewAllocationRepo(db),
		Assignment: NewAssignmentRepo(db),
		Duty:       NewDutyRepo(db),
		Bill:       NewBillRepo(db),
	}
}

// BeginTx opens a transaction for multi-repository writes. Without a DB
// handle (mock-backed aggregates in tests) it returns a nil transaction;
// callers guard Commit and Rollback accordingly.
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	return tx, tx.Error
}

// WithTx returns a repository aggregate bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
