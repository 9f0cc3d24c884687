package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	BarberID        uint      `json:"barber_id"`
	BarberName      string    `json:"barber_name"`
	AppointmentTime time.Time `json:"appointment_time"`
	ServiceType     string    `json:"service_type"`
	Notes           string    `json:"notes"`
}

type BarberListDTO struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
}
