package model

// Motor represents a vehicle listing in the catalog.
type Motor struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand,omitempty"`
	Year        *int    `json:"year,omitempty"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	ImageMime   string  `json:"image_mime,omitempty"`
}

// HasImage reports whether a photo is stored for the listing.
func (m Motor) HasImage() bool {
	return m.ImageMime != ""
}

// MotorInput is a validated add-motor submission.
type MotorInput struct {
	Title       string
	Brand       string
	Year        *int
	Price       float64
	Description string
}
