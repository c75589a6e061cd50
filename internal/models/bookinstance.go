package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstanceStatus string

const (
	StatusAvailable   InstanceStatus = "Available"
	StatusMaintenance InstanceStatus = "Maintenance"
	StatusLoaned      InstanceStatus = "Loaned"
	StatusReserved    InstanceStatus = "Reserved"
)

// InstanceStatuses lists every valid status, in form display order.
var InstanceStatuses = []InstanceStatus{
	StatusAvailable,
	StatusMaintenance,
	StatusLoaned,
	StatusReserved,
}

func ValidInstanceStatus(s string) bool {
	for _, status := range InstanceStatuses {
		if InstanceStatus(s) == status {
			return true
		}
	}
	return false
}

type BookInstance struct {
	ID      uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	BookID  uuid.UUID      `json:"book_id" gorm:"type:uuid;not null;index"`
	Imprint string         `json:"imprint" gorm:"not null"`
	Status  InstanceStatus `json:"status" gorm:"not null;default:Maintenance"`
	DueBack time.Time      `json:"due_back" gorm:"not null"`

	Book Book `json:"book,omitempty" gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT"`
}

func (BookInstance) TableName() string {
	return "book_instances"
}

func (bi *BookInstance) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	if bi.Status == "" {
		bi.Status = StatusMaintenance
	}
	if bi.DueBack.IsZero() {
		bi.DueBack = time.Now()
	}
	return nil
}

func (bi BookInstance) DueBackFormatted() string { return bi.DueBack.Format(dateMedium) }

// DueBackISO is the canonical YYYY-MM-DD form used to populate the
// update form's date input.
func (bi BookInstance) DueBackISO() string { return bi.DueBack.Format(DateLayout) }

func (bi BookInstance) URL() string {
	return fmt.Sprintf("/catalog/bookinstance/%s", bi.ID)
}
