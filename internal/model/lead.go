package model

import "time"

// LeadInterest is what a prospect is contacting the company about.
type LeadInterest string

const (
	InterestInvestor LeadInterest = "Investor"
	InterestTenant   LeadInterest = "Tenant"
	InterestPR       LeadInterest = "PR"
	InterestCareers  LeadInterest = "Careers"
)

// Valid reports whether i is one of the known interests.
func (i LeadInterest) Valid() bool {
	switch i {
	case InterestInvestor, InterestTenant, InterestPR, InterestCareers:
		return true
	}
	return false
}

// Lead is a contact-form submission. Leads are write-once.
type Lead struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Company   string       `json:"company,omitempty"`
	Interest  LeadInterest `json:"interest"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"created_at"`
}
