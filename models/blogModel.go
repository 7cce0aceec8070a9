package models

type Blog struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Author    string `json:"author,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt,omitempty"`
	ReadTime  string `json:"read_time,omitempty"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status,omitempty"`
	Views     int    `json:"views,omitempty"`
}
