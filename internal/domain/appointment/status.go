package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const StatusPending Status = "pending"

// InitialStatus is stored when a booking arrives without one.
func InitialStatus() Status {
	return StatusPending
}
