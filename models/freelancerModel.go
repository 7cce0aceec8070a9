package models

type Freelancer struct {
	ID               int      `json:"id"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	Tel              string   `json:"tel,omitempty"`
	Website          string   `json:"website,omitempty"`
	Title            string   `json:"title,omitempty"`
	Bio              string   `json:"bio,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Services         []string `json:"services,omitempty"`
	ExperienceYears  int      `json:"experience_years,omitempty"`
	HourlyRate       *float64 `json:"hourly_rate,omitempty"`
	Address          string   `json:"address,omitempty"`
	City             string   `json:"city,omitempty"`
	Country          string   `json:"country,omitempty"`
	MatriculeFiscale string   `json:"matricule_fiscale,omitempty"`
	CIN              string   `json:"cin,omitempty"`
	Avatar           string   `json:"avatar,omitempty"`
	CoverImage       string   `json:"cover_image,omitempty"`
	Verified         bool     `json:"verified"`
	IsActive         bool     `json:"is_active"`
	Rating           float64  `json:"rating"`
	ReviewsCount     int      `json:"reviews_count"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}
