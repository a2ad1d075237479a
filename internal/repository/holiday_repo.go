package repository

import (
	"time"

	"staff-planner/internal/models"

	"gorm.io/gorm"
)

type HolidayRepository interface {
	Create(holiday *models.Holiday) error
	BulkCreate(holidays []models.Holiday) error
	GetByDateRange(start, end time.Time) ([]models.Holiday, error)
	GetByYear(year int) ([]models.Holiday, error)
	GetAll() ([]models.Holiday, error)
	Delete(id uint) error
	DeleteByYear(year int) error
}

type GormHolidayRepository struct {
	db *gorm.DB
}

func NewGormHolidayRepository(db *gorm.DB) (HolidayRepository, error) {
	if err := db.AutoMigrate(&models.Holiday{}); err != nil {
		return nil, err
	}
	return &GormHolidayRepository{db: db}, nil
}

func (r *GormHolidayRepository) Create(holiday *models.Holiday) error {
	if err := r.db.Create(holiday).Error; err != nil {
		return &WriteError{Op: "insert holiday", Err: err}
	}
	return nil
}

func (r *GormHolidayRepository) BulkCreate(holidays []models.Holiday) error {
	if len(holidays) == 0 {
		return nil
	}
	if err := r.db.Create(&holidays).Error; err != nil {
		return &WriteError{Op: "bulk insert holidays", Err: err}
	}
	return nil
}

func (r *GormHolidayRepository) GetByDateRange(start, end time.Time) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Where("date >= ? AND date <= ?", start, end).
		Order("date").
		Find(&holidays).Error
	return holidays, err
}

func (r *GormHolidayRepository) GetByYear(year int) ([]models.Holiday, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	return r.GetByDateRange(start, end)
}

func (r *GormHolidayRepository) GetAll() ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.Order("date").Find(&holidays).Error
	return holidays, err
}

func (r *GormHolidayRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Holiday{}, id).Error; err != nil {
		return &WriteError{Op: "delete holiday", Err: err}
	}
	return nil
}

func (r *GormHolidayRepository) DeleteByYear(year int) error {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	err := r.db.Where("date >= ? AND date <= ?", start, end).
		Delete(&models.Holiday{}).Error
	if err != nil {
		return &WriteError{Op: "delete holidays by year", Err: err}
	}
	return nil
}
