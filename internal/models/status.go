package models

// Status is owned by the gateway; the client passes it through untouched.
type Status string

const (
	StatusActive  Status = "Active"
	StatusRedFlag Status = "Red Flag"
)
