package models

import "time"

// Subscriber is a newsletter sign-up, unique by lowercased email.
type Subscriber struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Budget         float64   `json:"budget"`
	Email          string    `json:"email"`
	DateSubscribed time.Time `json:"dateSubscribed"`
}
