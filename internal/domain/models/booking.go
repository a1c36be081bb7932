package models

// Booking is a trip reservation. Destination is free text and dates are kept
// exactly as the client sent them.
type Booking struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Passengers  int    `json:"passengers"`
}
