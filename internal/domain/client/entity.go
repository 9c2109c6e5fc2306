package client

import "time"

// Client is a care recipient with a monthly hour budget agreed by contract.
type Client struct {
	ID                     string
	Name                   string
	MonthlyContractedHours float64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
