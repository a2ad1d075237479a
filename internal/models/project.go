package models

import "time"

// Tipology classifies how a project's time is bucketed in staffing reports
const (
	TipologyBillable        = "billable"
	TipologyInternalProduct = "internal_product"
	TipologyAvailability    = "availability"
	TipologyManagement      = "management"
	TipologySupport         = "support"
	TipologyOtherBillable   = "other_billable"
)

type Project struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"not null" json:"name"`
	Tipology  string    `gorm:"type:varchar(30);not null;default:'billable'" json:"tipology"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

// IsValid checks the data
func (p *Project) IsValid() bool {
	if p.Code == "" || p.Name == "" {
		return false
	}
	switch p.Tipology {
	case TipologyBillable, TipologyInternalProduct, TipologyAvailability,
		TipologyManagement, TipologySupport, TipologyOtherBillable:
		return true
	}
	return false
}
