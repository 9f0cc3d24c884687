package models

import "time"

// The composite unique index on (barber_id, appointment_time) is the only
// double-booking guard: a second insert for the same slot fails at the store.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"not null" json:"customer_id"`
	Customer   User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `gorm:"not null;uniqueIndex:idx_barber_slot" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AppointmentTime time.Time `gorm:"not null;uniqueIndex:idx_barber_slot" json:"appointment_time"`

	ServiceType string `gorm:"size:50" json:"service_type"`
	Notes       string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
