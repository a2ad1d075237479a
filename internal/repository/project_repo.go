package repository

import (
	"errors"
	"staff-planner/internal/models"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	GetByCode(code string) (*models.Project, error)
	GetAll() ([]models.Project, error)
	GetActive() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uint) error
}

type GormProjectRepository struct {
	db *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) (ProjectRepository, error) {
	if err := db.AutoMigrate(&models.Project{}); err != nil {
		return nil, err
	}
	return &GormProjectRepository{db: db}, nil
}

func (r *GormProjectRepository) Create(project *models.Project) error {
	// codes are the human-facing key, reject duplicates up front
	existing, err := r.GetByCode(project.Code)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("project code already exists")
	}

	if err := r.db.Create(project).Error; err != nil {
		return &WriteError{Op: "insert project", Err: err}
	}
	return nil
}

func (r *GormProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) GetByCode(code string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("code = ?", code).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *GormProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("code").Find(&projects).Error
	return projects, err
}

func (r *GormProjectRepository) GetActive() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("active = ?", true).Order("code").Find(&projects).Error
	return projects, err
}

func (r *GormProjectRepository) Update(project *models.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return &WriteError{Op: "update project", Err: err}
	}
	return nil
}

func (r *GormProjectRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return &WriteError{Op: "delete project", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return errors.New("project not found")
	}
	return nil
}
