// internal/repository/assignment_repo.go
package repository

import (
	"errors"
	"fmt"
	"time"

	"staff-planner/internal/engine"
	"staff-planner/internal/models"

	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *models.Assignment) error
	GetByID(id uint) (*models.Assignment, error)
	GetByPersonID(personID uint) ([]models.Assignment, error)
	GetIntersecting(personID uint, start, end time.Time) ([]models.Assignment, error)
	GetAllIntersecting(start, end time.Time) ([]models.Assignment, error)
	GetAll() ([]models.Assignment, error)
	Delete(id uint) error
	DeleteByPersonID(personID uint) error
	ApplyOps(ops []engine.WriteOp) error
}

type GormAssignmentRepository struct {
	db *gorm.DB
}

func NewGormAssignmentRepository(db *gorm.DB) (AssignmentRepository, error) {
	if err := db.AutoMigrate(&models.Assignment{}); err != nil {
		return nil, err
	}
	return &GormAssignmentRepository{db: db}, nil
}

func (r *GormAssignmentRepository) Create(assignment *models.Assignment) error {
	if err := r.db.Create(assignment).Error; err != nil {
		return &WriteError{Op: "insert assignment", Err: err}
	}
	return nil
}

func (r *GormAssignmentRepository) GetByID(id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *GormAssignmentRepository) GetByPersonID(personID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("person_id = ?", personID).
		Order("start_date").
		Find(&assignments).Error
	return assignments, err
}

func (r *GormAssignmentRepository) GetIntersecting(personID uint, start, end time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("person_id = ? AND start_date <= ? AND end_date >= ?",
		personID, end, start).
		Order("start_date").
		Find(&assignments).Error
	return assignments, err
}

func (r *GormAssignmentRepository) GetAllIntersecting(start, end time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("start_date <= ? AND end_date >= ?", end, start).
		Order("person_id, start_date").
		Find(&assignments).Error
	return assignments, err
}

func (r *GormAssignmentRepository) GetAll() ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Order("person_id, start_date").Find(&assignments).Error
	return assignments, err
}

func (r *GormAssignmentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Assignment{}, id)
	if result.Error != nil {
		return &WriteError{Op: "delete assignment", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return &WriteError{Op: "delete assignment", Err: gorm.ErrRecordNotFound}
	}
	return nil
}

func (r *GormAssignmentRepository) DeleteByPersonID(personID uint) error {
	err := r.db.Where("person_id = ?", personID).Delete(&models.Assignment{}).Error
	if err != nil {
		return &WriteError{Op: "delete assignments by person", Err: err}
	}
	return nil
}

// ApplyOps executes a resolution plan inside one transaction: either every
// delete and insert lands, or none do.
func (r *GormAssignmentRepository) ApplyOps(ops []engine.WriteOp) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			switch op.Kind {
			case engine.OpDelete:
				result := tx.Delete(&models.Assignment{}, op.AssignmentID)
				if result.Error != nil {
					return result.Error
				}
				if result.RowsAffected == 0 {
					return fmt.Errorf("assignment %d vanished before resolution", op.AssignmentID)
				}
			case engine.OpInsert:
				if err := tx.Create(op.Assignment).Error; err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown write operation %q", op.Kind)
			}
		}
		return nil
	})
	if err != nil {
		return &WriteError{Op: "apply resolution plan", Err: err}
	}
	return nil
}
