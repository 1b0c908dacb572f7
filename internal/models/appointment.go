package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientName   string `gorm:"size:100;not null" json:"clientName"`
	Email        string `gorm:"size:100;not null" json:"email"`
	Phone        string `gorm:"size:30;not null" json:"phone"`
	BusinessName string `gorm:"size:100" json:"businessName"`

	ServiceType string `gorm:"size:30;not null" json:"serviceType"`

	AppointmentDate time.Time `gorm:"type:date;not null;index" json:"appointmentDate"`
	TimeSlot        string    `gorm:"size:10;not null" json:"timeSlot"`

	Message string `gorm:"type:text" json:"message"`

	Status     string     `gorm:"size:20;default:'scheduled'" json:"status"`
	CanceledAt *time.Time `json:"canceledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
