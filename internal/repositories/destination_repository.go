package repositories

import (
	"context"
	"database/sql"
	"errors"

	intdb "travelapi/internal/db"
	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

type DestinationRepository struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

const destinationColumns = `id, name, banner_image, image, teaser, description, gallery_images, events`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDestination(s rowScanner) (models.Destination, error) {
	var d models.Destination
	err := s.Scan(&d.ID, &d.Name, &d.BannerImage, &d.Image, &d.Teaser, &d.Description, &d.GalleryImages, &d.Events)
	return d, err
}

func (r DestinationRepository) List(ctx context.Context) ([]models.Destination, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r DestinationRepository) GetByID(ctx context.Context, id string) (models.Destination, error) {
	row := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(`SELECT `+destinationColumns+` FROM destinations WHERE id = ?`), id)
	d, err := scanDestination(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Destination{}, domain.NotFoundError{Resource: "destination", Err: err}
	}
	if err != nil {
		return models.Destination{}, err
	}
	return d, nil
}

// Upsert writes a catalog row, replacing every column when the id exists.
// Only the seed tool calls it; the API never writes destinations.
func (r DestinationRepository) Upsert(ctx context.Context, d models.Destination) error {
	query := `
		INSERT INTO destinations (` + destinationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), banner_image = VALUES(banner_image), image = VALUES(image),
			teaser = VALUES(teaser), description = VALUES(description),
			gallery_images = VALUES(gallery_images), events = VALUES(events)`
	if r.Dialect == intdb.Postgres {
		query = `
		INSERT INTO destinations (` + destinationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, banner_image = EXCLUDED.banner_image, image = EXCLUDED.image,
			teaser = EXCLUDED.teaser, description = EXCLUDED.description,
			gallery_images = EXCLUDED.gallery_images, events = EXCLUDED.events`
	}
	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query),
		d.ID, d.Name, d.BannerImage, d.Image, d.Teaser, d.Description, d.GalleryImages, d.Events)
	return err
}
