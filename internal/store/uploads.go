package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Upload records one stored workbook file.
type Upload struct {
	ID         string    `json:"id"`
	CompanyID  int64     `json:"companyId"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// CreateUpload inserts an upload record.
func (s *Store) CreateUpload(id string, companyID int64, filename, path string) error {
	_, err := s.db.Exec(`
		INSERT INTO uploads (id, company_id, filename, path)
		VALUES (?, ?, ?, ?)
	`, id, companyID, filename, path)
	if err != nil {
		return fmt.Errorf("failed to create upload: %w", err)
	}
	return nil
}

// GetUpload fetches one upload by id.
func (s *Store) GetUpload(id string) (*Upload, error) {
	var u Upload
	err := s.db.QueryRow(`
		SELECT id, company_id, filename, path, uploaded_at
		FROM uploads WHERE id = ?
	`, id).Scan(&u.ID, &u.CompanyID, &u.Filename, &u.Path, &u.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get upload: %w", err)
	}
	return &u, nil
}
