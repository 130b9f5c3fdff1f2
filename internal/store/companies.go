package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned for lookups that match no row.
var ErrNotFound = errors.New("not found")

// Company is one tracked client company.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Sector    string    `json:"sector"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCompany inserts a company and returns its id.
func (s *Store) CreateCompany(name, sector string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO companies (name, sector)
		VALUES (?, ?)
	`, name, sector)
	if err != nil {
		return 0, fmt.Errorf("failed to create company: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get company id: %w", err)
	}
	return id, nil
}

// GetCompany fetches one company by id.
func (s *Store) GetCompany(id int64) (*Company, error) {
	var c Company
	err := s.db.QueryRow(`
		SELECT id, name, sector, created_at
		FROM companies WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Sector, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// ListCompanies returns all companies, newest first.
func (s *Store) ListCompanies() ([]Company, error) {
	rows, err := s.db.Query(`
		SELECT id, name, sector, created_at
		FROM companies ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Sector, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
