package models

// Destination is a catalog row as stored: gallery images comma-joined and
// events serialized as JSON text.
type Destination struct {
	ID            string
	Name          string
	BannerImage   string
	Image         string
	Teaser        string
	Description   string
	GalleryImages string
	Events        string
}

// Event is one entry of a destination's embedded event list.
type Event struct {
	Name        string `json:"name" yaml:"name"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
}

// DestinationView is the API shape of a destination.
type DestinationView struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BannerImage   string   `json:"bannerImage"`
	Image         string   `json:"image"`
	Teaser        string   `json:"teaser"`
	Description   string   `json:"description"`
	GalleryImages []string `json:"galleryImages"`
	Events        []Event  `json:"events"`
}
