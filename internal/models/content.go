package models

type ServiceCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
}

type Founder struct {
	Role string `json:"role"`
	Info string `json:"info"`
}

type HomeContent struct {
	Language          string            `json:"language"`
	Direction         string            `json:"direction"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	TrustIndicators   []string          `json:"trust_indicators"`
	ServiceCategories []ServiceCategory `json:"service_categories"`
	Testimonials      []Testimonial     `json:"testimonials"`
	Leadership        []Founder         `json:"leadership"`
}
