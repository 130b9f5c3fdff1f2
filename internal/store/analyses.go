package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Analysis is one persisted analysis run. ResultJSON carries the serialized
// AnalysisResult; the store does not interpret it.
type Analysis struct {
	ID         string    `json:"id"`
	CompanyID  int64     `json:"companyId"`
	UploadID   string    `json:"uploadId,omitempty"`
	ResultJSON string    `json:"resultJson"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateAnalysis inserts an analysis record.
func (s *Store) CreateAnalysis(id string, companyID int64, uploadID, resultJSON string) error {
	_, err := s.db.Exec(`
		INSERT INTO analyses (id, company_id, upload_id, result_json)
		VALUES (?, ?, ?, ?)
	`, id, companyID, uploadID, resultJSON)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// GetAnalysis fetches one analysis by id.
func (s *Store) GetAnalysis(id string) (*Analysis, error) {
	var a Analysis
	var uploadID sql.NullString
	err := s.db.QueryRow(`
		SELECT id, company_id, upload_id, result_json, created_at
		FROM analyses WHERE id = ?
	`, id).Scan(&a.ID, &a.CompanyID, &uploadID, &a.ResultJSON, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	a.UploadID = uploadID.String
	return &a, nil
}

// ListAnalyses returns a company's analyses, newest first.
func (s *Store) ListAnalyses(companyID int64) ([]Analysis, error) {
	rows, err := s.db.Query(`
		SELECT id, company_id, upload_id, result_json, created_at
		FROM analyses WHERE company_id = ? ORDER BY created_at DESC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		var uploadID sql.NullString
		if err := rows.Scan(&a.ID, &a.CompanyID, &uploadID, &a.ResultJSON, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		a.UploadID = uploadID.String
		out = append(out, a)
	}
	return out, rows.Err()
}
