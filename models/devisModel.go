package models

// Devis is the view model a quotation record is mapped into: joined requester
// name, combined location, lower-cased status. The backend shapes live in the
// *Record types below.
type Devis struct {
	ID                string     `json:"id"`
	ServiceID         int        `json:"serviceId"`
	ServiceType       string     `json:"serviceType"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Location          string     `json:"location"`
	PhoneNumber       string     `json:"phoneNumber"`
	Email             string     `json:"email"`
	PreferredTimeline string     `json:"preferredTimeline"`
	Status            string     `json:"status"`
	CreatedAt         string     `json:"createdAt"`
	UpdatedAt         string     `json:"updatedAt"`
	Proposals         []Proposal `json:"proposals,omitempty"`
}

type Proposal struct {
	ID         string             `json:"id"`
	Price      float64            `json:"price"`
	Message    string             `json:"message,omitempty"`
	Status     string             `json:"status"`
	CreatedAt  string             `json:"createdAt"`
	Freelancer ProposalFreelancer `json:"freelancer"`
}

type ProposalFreelancer struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Title  string  `json:"title,omitempty"`
	Avatar string  `json:"avatar,omitempty"`
	Rating float64 `json:"rating,omitempty"`
}

// DevisRequest is the create payload POSTed to /quotations.
type DevisRequest struct {
	ServiceID         int    `json:"service_id" binding:"required"`
	FirstName         string `json:"first_name" binding:"required"`
	LastName          string `json:"last_name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"required"`
	City              string `json:"city" binding:"required"`
	Address           string `json:"address"`
	Description       string `json:"description" binding:"required"`
	PreferredTimeline string `json:"preferred_timeline"`
}

// QuotationRecord is the raw backend quotation shape.
type QuotationRecord struct {
	ID                int                       `json:"id"`
	ServiceID         int                       `json:"service_id"`
	Service           *QuotationServiceRecord   `json:"service,omitempty"`
	FirstName         string                    `json:"first_name"`
	LastName          string                    `json:"last_name"`
	Email             string                    `json:"email"`
	Phone             string                    `json:"phone"`
	City              string                    `json:"city"`
	Address           string                    `json:"address,omitempty"`
	Description       string                    `json:"description"`
	PreferredTimeline string                    `json:"preferred_timeline,omitempty"`
	Status            string                    `json:"status"`
	CreatedAt         string                    `json:"created_at"`
	UpdatedAt         string                    `json:"updated_at"`
	Proposals         []QuotationProposalRecord `json:"proposals,omitempty"`
}

type QuotationServiceRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type QuotationProposalRecord struct {
	ID         int                        `json:"id"`
	Price      float64                    `json:"price"`
	Message    string                     `json:"message,omitempty"`
	Status     string                     `json:"status"`
	CreatedAt  string                     `json:"created_at"`
	Freelancer *QuotationFreelancerRecord `json:"freelancer,omitempty"`
}

type QuotationFreelancerRecord struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Title     string  `json:"title,omitempty"`
	Avatar    string  `json:"avatar,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
}
