package models

import "time"

const (
	EnquiryStatusNew       = "new"
	EnquiryStatusContacted = "contacted"
	EnquiryStatusClosed    = "closed"
)

type Enquiry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerName      string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone     string `gorm:"size:20" json:"customer_phone"`
	CustomerEmail     string `gorm:"size:100" json:"customer_email"`
	ServiceInterested string `gorm:"size:100" json:"service_interested"`
	Message           string `gorm:"type:text" json:"message"`

	Status string `gorm:"size:20;default:'new'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

func IsValidEnquiryStatus(status string) bool {
	switch status {
	case EnquiryStatusNew, EnquiryStatusContacted, EnquiryStatusClosed:
		return true
	}
	return false
}
