package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/plantops/linesight/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS assessments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at DATETIME NOT NULL,
	evaluated_at DATETIME NOT NULL,
	domain TEXT NOT NULL,
	station TEXT NOT NULL,
	issue TEXT NOT NULL,
	time_to_attention TEXT NOT NULL,
	rul_days INTEGER NOT NULL,
	anomalous INTEGER NOT NULL,
	source TEXT NOT NULL,
	narrative TEXT NOT NULL,
	result_json TEXT NOT NULL,
	UNIQUE(domain, station, evaluated_at)
);

CREATE INDEX IF NOT EXISTS idx_created_at ON assessments(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_domain_station ON assessments(domain, station);
CREATE INDEX IF NOT EXISTS idx_anomalous ON assessments(anomalous);
`

type DB struct {
	conn *sql.DB
}

type StoredAssessment struct {
	ID              int64
	CreatedAt       time.Time
	EvaluatedAt     time.Time
	Domain          string
	Station         string
	Issue           string
	TimeToAttention string
	RULDays         int
	Anomalous       bool
	Source          string
	Narrative       string
	Result          models.AnalysisResult
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better performance under concurrent requests
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveResult upserts an analysis result keyed on the assessment's
// identity (domain, station, evaluated_at): re-analyzing the same
// window replaces the stored row instead of accumulating duplicates.
func (db *DB) SaveResult(result *models.AnalysisResult) (int64, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal result: %w", err)
	}

	query := `
		INSERT INTO assessments (
			created_at, evaluated_at, domain, station, issue,
			time_to_attention, rul_days, anomalous, source, narrative, result_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(domain, station, evaluated_at) DO UPDATE SET
			created_at = excluded.created_at,
			issue = excluded.issue,
			time_to_attention = excluded.time_to_attention,
			rul_days = excluded.rul_days,
			anomalous = excluded.anomalous,
			source = excluded.source,
			narrative = excluded.narrative,
			result_json = excluded.result_json
	`

	_, err = db.conn.Exec(
		query,
		time.Now(),
		result.Assessment.EvaluatedAt,
		result.Assessment.Domain,
		result.Assessment.Station,
		result.Request.Issue,
		result.Assessment.TimeToAttention,
		result.Assessment.RULDays,
		result.Assessment.Anomalous,
		result.Assessment.Source,
		result.Narrative,
		string(resultJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert assessment: %w", err)
	}

	// LastInsertId is not meaningful on the update path, so resolve the
	// row id through the key.
	var id int64
	err = db.conn.QueryRow(
		"SELECT id FROM assessments WHERE domain = ? AND station = ? AND evaluated_at = ?",
		result.Assessment.Domain,
		result.Assessment.Station,
		result.Assessment.EvaluatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve assessment id: %w", err)
	}

	return id, nil
}

// GetAssessment retrieves a single stored assessment by ID
func (db *DB) GetAssessment(id int64) (*StoredAssessment, error) {
	query := `
		SELECT id, created_at, evaluated_at, domain, station, issue,
		       time_to_attention, rul_days, anomalous, source, narrative, result_json
		FROM assessments
		WHERE id = ?
	`

	var stored StoredAssessment
	var resultJSON string

	err := db.conn.QueryRow(query, id).Scan(
		&stored.ID,
		&stored.CreatedAt,
		&stored.EvaluatedAt,
		&stored.Domain,
		&stored.Station,
		&stored.Issue,
		&stored.TimeToAttention,
		&stored.RULDays,
		&stored.Anomalous,
		&stored.Source,
		&stored.Narrative,
		&resultJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query assessment: %w", err)
	}

	if err := json.Unmarshal([]byte(resultJSON), &stored.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &stored, nil
}

// ListAssessments retrieves stored assessments with pagination
func (db *DB) ListAssessments(limit, offset int) ([]StoredAssessment, error) {
	query := `
		SELECT id, created_at, evaluated_at, domain, station, issue,
		       time_to_attention, rul_days, anomalous, source, narrative, result_json
		FROM assessments
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	return db.queryAssessments(query, limit, offset)
}

// AllAssessments retrieves every stored assessment, newest first.
func (db *DB) AllAssessments() ([]StoredAssessment, error) {
	query := `
		SELECT id, created_at, evaluated_at, domain, station, issue,
		       time_to_attention, rul_days, anomalous, source, narrative, result_json
		FROM assessments
		ORDER BY created_at DESC
	`
	return db.queryAssessments(query)
}

func (db *DB) queryAssessments(query string, args ...any) ([]StoredAssessment, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []StoredAssessment
	for rows.Next() {
		var stored StoredAssessment
		var resultJSON string

		err := rows.Scan(
			&stored.ID,
			&stored.CreatedAt,
			&stored.EvaluatedAt,
			&stored.Domain,
			&stored.Station,
			&stored.Issue,
			&stored.TimeToAttention,
			&stored.RULDays,
			&stored.Anomalous,
			&stored.Source,
			&stored.Narrative,
			&resultJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if err := json.Unmarshal([]byte(resultJSON), &stored.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}

		assessments = append(assessments, stored)
	}

	return assessments, rows.Err()
}

// CountAssessments returns the total number of stored assessments
func (db *DB) CountAssessments() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM assessments").Scan(&count)
	return count, err
}

// DeleteAssessment deletes a stored assessment by ID
func (db *DB) DeleteAssessment(id int64) error {
	_, err := db.conn.Exec("DELETE FROM assessments WHERE id = ?", id)
	return err
}
