package repository

import (
	"errors"
	"staff-planner/internal/models"

	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(person *models.Person) error
	GetByID(id uint) (*models.Person, error)
	GetByEmail(email string) (*models.Person, error)
	GetAll() ([]models.Person, error)
	GetBySquadLead(leadID uint) ([]models.Person, error)
	Update(person *models.Person) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

type GormPersonRepository struct {
	db *gorm.DB
}

func NewGormPersonRepository(db *gorm.DB) (PersonRepository, error) {
	if err := db.AutoMigrate(&models.Person{}); err != nil {
		return nil, err
	}
	return &GormPersonRepository{db: db}, nil
}

func (r *GormPersonRepository) Create(person *models.Person) error {
	if err := r.db.Create(person).Error; err != nil {
		return &WriteError{Op: "insert person", Err: err}
	}
	return nil
}

func (r *GormPersonRepository) GetByID(id uint) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *GormPersonRepository) GetByEmail(email string) (*models.Person, error) {
	var person models.Person
	err := r.db.Where("email = ?", email).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *GormPersonRepository) GetAll() ([]models.Person, error) {
	var persons []models.Person
	err := r.db.Order("name").Find(&persons).Error
	return persons, err
}

func (r *GormPersonRepository) GetBySquadLead(leadID uint) ([]models.Person, error) {
	var persons []models.Person
	err := r.db.Where("squad_lead_id = ?", leadID).
		Order("name").
		Find(&persons).Error
	return persons, err
}

func (r *GormPersonRepository) Update(person *models.Person) error {
	if err := r.db.Save(person).Error; err != nil {
		return &WriteError{Op: "update person", Err: err}
	}
	return nil
}

func (r *GormPersonRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Person{}, id)
	if result.Error != nil {
		return &WriteError{Op: "delete person", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return errors.New("person not found")
	}
	return nil
}

func (r *GormPersonRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Person{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
