package models

import "strings"

type Service struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	PriceUnit   string        `json:"price_unit,omitempty"`
	Specialties string        `json:"specialties,omitempty"`
	Disponiblity string       `json:"disponiblity,omitempty"`
	MoyDuration float64       `json:"moyDuration,omitempty"`
	CategoryID  *int          `json:"category_id,omitempty"`
	ImageURL    string        `json:"image_url,omitempty"`
	Rating      float64       `json:"rating"`
	NumRatings  int           `json:"num_ratings"`
	Features    []string      `json:"features,omitempty"`
	Process     []ServiceStep `json:"process,omitempty"`
}

type ServiceStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SpecialtyTags splits the backend's comma-separated specialties string into
// trimmed display tags.
func (s Service) SpecialtyTags() []string {
	if s.Specialties == "" {
		return nil
	}
	parts := strings.Split(s.Specialties, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

type ServiceCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Slug        string `json:"slug"`
}
