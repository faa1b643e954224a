package scanlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/scrublish/scrublish/pkg/utils"
	_ "modernc.org/sqlite"
)

const (
	dbFileName = "scans.db"
	dbDirName  = ".scrublish"
)

// DB wraps the SQLite database holding the post-redaction scan audit log.
// Every scan run is recorded with its findings so operators can review what
// nearly leaked before an export was published.
type DB struct {
	conn *sql.DB
	path string
}

// Scan is one recorded scanner run.
type Scan struct {
	ID           string
	Source       string // what was scanned, e.g. a file path or session ID
	ScannedAt    time.Time
	FindingCount int
}

// Finding is a single surviving match reported by the scanner.
type Finding struct {
	Category string
	Snippet  string
}

// ParseHit splits a scanner hit description of the form
// "[category] snippet" into its parts. Unparseable hits keep the whole
// string as the snippet under an empty category.
func ParseHit(hit string) Finding {
	if strings.HasPrefix(hit, "[") {
		if end := strings.Index(hit, "] "); end > 0 {
			return Finding{Category: hit[1:end], Snippet: hit[end+2:]}
		}
	}
	return Finding{Snippet: hit}
}

// Open opens or creates the scan log in the standard location
func Open() (*DB, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	dbDir := filepath.Join(home, dbDirName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	return OpenPath(filepath.Join(dbDir, dbFileName))
}

// OpenPath opens or creates the scan log at an explicit path
func OpenPath(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn: conn,
		path: path,
	}

	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// initSchema creates tables if they don't exist
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scans (
		scan_id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		scanned_at DATETIME NOT NULL,
		finding_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS findings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_id TEXT NOT NULL,
		category TEXT NOT NULL,
		snippet TEXT NOT NULL,
		FOREIGN KEY (scan_id) REFERENCES scans(scan_id)
	);

	CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at);
	CREATE INDEX IF NOT EXISTS idx_findings_scan ON findings(scan_id);
	`

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

// RecordScan stores one scanner run and its hit descriptions, returning the
// new scan ID.
func (db *DB) RecordScan(source string, hits []string) (string, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	scanID := uuid.NewString()

	scanSQL := `
		INSERT INTO scans (scan_id, source, scanned_at, finding_count)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.Exec(scanSQL, scanID, source, time.Now(), len(hits)); err != nil {
		return "", fmt.Errorf("failed to insert scan: %w", err)
	}

	findingSQL := `
		INSERT INTO findings (scan_id, category, snippet)
		VALUES (?, ?, ?)
	`
	for _, hit := range hits {
		f := ParseHit(hit)
		// Never store the full match: the audit log must not become a
		// secrets database of its own.
		masked := utils.TruncateSecret(f.Snippet, 8, 4)
		if _, err := tx.Exec(findingSQL, scanID, f.Category, masked); err != nil {
			return "", fmt.Errorf("failed to insert finding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return scanID, nil
}

// RecentScans returns the N most recent scans
func (db *DB) RecentScans(limit int) ([]Scan, error) {
	query := `
		SELECT scan_id, source, scanned_at, finding_count
		FROM scans
		ORDER BY scanned_at DESC
		LIMIT ?
	`

	rows, err := db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var s Scan
		if err := rows.Scan(&s.ID, &s.Source, &s.ScannedAt, &s.FindingCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scans = append(scans, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scans: %w", err)
	}

	return scans, nil
}

// Findings returns the findings recorded for a scan
func (db *DB) Findings(scanID string) ([]Finding, error) {
	query := `
		SELECT category, snippet
		FROM findings
		WHERE scan_id = ?
		ORDER BY id
	`

	rows, err := db.conn.Query(query, scanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query findings: %w", err)
	}
	defer rows.Close()

	var findings []Finding
	for rows.Next() {
		var f Finding
		if err := rows.Scan(&f.Category, &f.Snippet); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		findings = append(findings, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating findings: %w", err)
	}

	return findings, nil
}
