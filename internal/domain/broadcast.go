package domain

// DeliveryStatus describes what happened to a single broadcast recipient
type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryBlocked   DeliveryStatus = "blocked"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

// DeliveryOutcome is the result of sending a broadcast to one user
type DeliveryOutcome struct {
	UserID int64
	Status DeliveryStatus
	Err    error
}

// BroadcastReport summarizes one broadcast run
type BroadcastReport struct {
	ID        string
	Total     int
	Delivered int
	Failed    int
	Outcomes  []DeliveryOutcome
}

// Add records an outcome and updates the counters
func (r *BroadcastReport) Add(o DeliveryOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.Status == DeliveryDelivered {
		r.Delivered++
		return
	}
	r.Failed++
}

// Count returns how many outcomes have the given status
func (r *BroadcastReport) Count(status DeliveryStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
