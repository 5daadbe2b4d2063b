package booking

type Status string

const (
	// StatusBooked is the only status this service ever writes; cancellation
	// is a separate flow that flips a row to StatusCancelled.
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCancelled:
		return true
	default:
		return false
	}
}
