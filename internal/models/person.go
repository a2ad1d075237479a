package models

import "time"

const (
	RoleAdmin     string = "admin"
	RoleSquadLead string = "squad_lead"
	RoleMember    string = "member"
)

type Person struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Region      string    `gorm:"type:varchar(40);not null" json:"region"` // home office, resolves the holiday calendar
	SquadLeadID *uint     `gorm:"index" json:"squad_lead_id,omitempty"`
	Role        string    `gorm:"default:'member'" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	SquadLead *Person `gorm:"foreignKey:SquadLeadID" json:"-"`
}

func (Person) TableName() string {
	return "persons"
}

// IsValid checks the data
func (p *Person) IsValid() bool {
	if p.Name == "" {
		return false
	}
	if p.Region == "" {
		return false
	}
	if p.Role != RoleAdmin && p.Role != RoleSquadLead && p.Role != RoleMember {
		return false
	}
	return true
}
