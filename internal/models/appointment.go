package models

type Appointment struct {
	ID DocID `bson:"_id,omitempty" json:"_id,omitempty"`

	CustomerName  string  `bson:"customer_name" json:"customer_name"`
	CustomerEmail *string `bson:"customer_email" json:"customer_email"`
	CustomerPhone *string `bson:"customer_phone" json:"customer_phone"`

	// Free-form references; never checked against the service or barber
	// collections.
	ServiceID *string `bson:"service_id" json:"service_id"`
	BarberID  *string `bson:"barber_id" json:"barber_id"`

	Date   string  `bson:"date" json:"date"` // YYYY-MM-DD
	Time   string  `bson:"time" json:"time"` // HH:MM
	Notes  *string `bson:"notes" json:"notes"`
	Status string  `bson:"status" json:"status"`
}

type AppointmentInput struct {
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail *string `json:"customer_email" validate:"omitnil,email"`
	CustomerPhone *string `json:"customer_phone"`
	ServiceID     *string `json:"service_id"`
	BarberID      *string `json:"barber_id"`
	Date          string  `json:"date" validate:"required"`
	Time          string  `json:"time" validate:"required"`
	Notes         *string `json:"notes"`
	Status        *string `json:"status"`
}

// Record normalizes the input; defaultStatus applies when no status was sent.
func (in AppointmentInput) Record(defaultStatus string) Appointment {
	ap := Appointment{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		ServiceID:     in.ServiceID,
		BarberID:      in.BarberID,
		Date:          in.Date,
		Time:          in.Time,
		Notes:         in.Notes,
		Status:        defaultStatus,
	}
	if in.Status != nil {
		ap.Status = *in.Status
	}
	return ap
}
