// Package seed loads the destination catalog from a YAML file into the store.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"travelapi/internal/domain/models"
	"travelapi/internal/repositories"
	"travelapi/internal/services"
	"travelapi/internal/utils"

	"gopkg.in/yaml.v3"
)

type File struct {
	Destinations []Entry `yaml:"destinations"`
}

// Entry is one destination as written by catalog editors.
type Entry struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	BannerImage   string         `yaml:"banner_image"`
	Image         string         `yaml:"image"`
	Teaser        string         `yaml:"teaser"`
	Description   string         `yaml:"description"`
	GalleryImages []string       `yaml:"gallery_images"`
	Events        []models.Event `yaml:"events"`
}

// Parse decodes a catalog and converts it to stored rows. Every entry needs
// an id and a name, and ids must be unique.
func Parse(r io.Reader) ([]models.Destination, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Destinations))
	out := make([]models.Destination, 0, len(f.Destinations))
	for i, e := range f.Destinations {
		id := strings.TrimSpace(e.ID)
		if id == "" || strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("destination #%d: id and name are required", i+1)
		}
		if seen[id] {
			return nil, fmt.Errorf("destination %q listed twice", id)
		}
		seen[id] = true

		for _, img := range e.GalleryImages {
			if strings.Contains(img, ",") {
				return nil, fmt.Errorf("destination %q: gallery image %q contains a comma", id, img)
			}
		}
		events, err := services.EncodeEvents(e.Events)
		if err != nil {
			return nil, fmt.Errorf("destination %q: encode events: %w", id, err)
		}

		out = append(out, models.Destination{
			ID:            id,
			Name:          strings.TrimSpace(e.Name),
			BannerImage:   strings.TrimSpace(e.BannerImage),
			Image:         strings.TrimSpace(e.Image),
			Teaser:        strings.TrimSpace(e.Teaser),
			Description:   strings.TrimSpace(e.Description),
			GalleryImages: utils.JoinCommaList(e.GalleryImages),
			Events:        events,
		})
	}
	return out, nil
}

func LoadFile(path string) ([]models.Destination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Apply upserts every destination and returns how many were written.
func Apply(ctx context.Context, repo repositories.DestinationRepository, list []models.Destination) (int, error) {
	for i, d := range list {
		if err := repo.Upsert(ctx, d); err != nil {
			return i, fmt.Errorf("upsert destination %q: %w", d.ID, err)
		}
		utils.LogEvent("", "seed", "upsert", "destination_id="+d.ID)
	}
	return len(list), nil
}
