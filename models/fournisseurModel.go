package models

// Fournisseur is a supplier managed in the admin back-office.
type Fournisseur struct {
	ID               int               `json:"id"`
	OwnerName        string            `json:"owner_name,omitempty"`
	CompanyName      string            `json:"company_name"`
	MatriculeFiscale string            `json:"matricule_fiscale,omitempty"`
	FormeJuridique   string            `json:"forme_juridique,omitempty"`
	Site             string            `json:"site,omitempty"`
	Email            string            `json:"email"`
	Tel              string            `json:"tel"`
	MainCategory     string            `json:"main_category,omitempty"`
	Services         []string          `json:"services,omitempty"`
	Address          string            `json:"address,omitempty"`
	City             string            `json:"city,omitempty"`
	Country          string            `json:"country,omitempty"`
	Verified         bool              `json:"verified"`
	IsActive         bool              `json:"is_active"`
	CreatedAt        string            `json:"created_at,omitempty"`
	UpdatedAt        string            `json:"updated_at,omitempty"`
	Products         []SupplierProduct `json:"products,omitempty"`
}

// SupplierProduct is the light product shape nested in supplier responses.
type SupplierProduct struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Slug    string  `json:"slug"`
	InStock bool    `json:"in_stock"`
}
