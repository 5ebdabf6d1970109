package mysql

import (
	"database/sql"
	"time"

	"github.com/platziflix/catalog/internal/datasources"
)

var _ datasources.CatalogRepository = (*Repository)(nil)
var _ datasources.RatingRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
