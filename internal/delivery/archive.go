package delivery

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/felixgeelhaar/questionnaire/internal/domain"
	"github.com/felixgeelhaar/questionnaire/internal/errors"
	"github.com/felixgeelhaar/questionnaire/internal/survey"
)

// tsLayout has fixed width so timestamps sort lexically
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Archive keeps submitted responses in a local SQLite database
type Archive struct {
	db *sql.DB
}

// Record is an archived response without its answers
type Record struct {
	ID          string    `json:"id" yaml:"id"`
	Catalog     string    `json:"catalog" yaml:"catalog"`
	Title       string    `json:"title" yaml:"title"`
	Mode        string    `json:"mode" yaml:"mode"`
	Answered    int       `json:"answered" yaml:"answered"`
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at"`
}

// OpenArchive opens (and migrates) the archive at path
func OpenArchive(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDirectoryFailed, "create archive directory", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeArchiveOpen, fmt.Sprintf("open archive %s", path), err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeArchiveOpen, fmt.Sprintf("open archive %s", path), err)
	}

	a := &Archive{db: db}
	if err := a.migrate(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(errors.ErrCodeArchiveOpen, "migrate archive", err)
	}
	return a, nil
}

func (a *Archive) migrate() error {
	_, err := a.db.Exec(`
CREATE TABLE IF NOT EXISTS responses (
  id TEXT PRIMARY KEY,
  session_id TEXT NOT NULL,
  catalog TEXT NOT NULL,
  title TEXT NOT NULL DEFAULT '',
  fingerprint TEXT NOT NULL,
  mode TEXT NOT NULL,
  answered INTEGER NOT NULL DEFAULT 0,
  answers TEXT NOT NULL,
  submitted_ts TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_responses_catalog ON responses(catalog);
CREATE INDEX IF NOT EXISTS idx_responses_submitted ON responses(submitted_ts);
`)
	return err
}

// Close releases the database
func (a *Archive) Close() error {
	return a.db.Close()
}

// Deliver stores r; it implements Sink
func (a *Archive) Deliver(ctx context.Context, r Response) error {
	answers, err := json.Marshal(r.Answers.Entries())
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "encode answers", err)
	}

	_, err = a.db.ExecContext(ctx, `
INSERT INTO responses (id, session_id, catalog, title, fingerprint, mode, answered, answers, submitted_ts)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.SessionID, r.Catalog, r.Title, r.Fingerprint, string(r.Mode),
		r.Answers.Len(), string(answers), r.SubmittedAt.UTC().Format(tsLayout))
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "archive response", err)
	}
	return nil
}

// List returns archived responses, newest first. catalog filters when set;
// limit <= 0 means no limit.
func (a *Archive) List(ctx context.Context, catalog string, limit int) ([]Record, error) {
	query := `SELECT id, catalog, title, mode, answered, submitted_ts FROM responses`
	var args []any
	if catalog != "" {
		query += ` WHERE catalog = ?`
		args = append(args, catalog)
	}
	query += ` ORDER BY submitted_ts DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "list responses", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var ts string
		if err := rows.Scan(&rec.ID, &rec.Catalog, &rec.Title, &rec.Mode, &rec.Answered, &ts); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "scan response", err)
		}
		rec.SubmittedAt, _ = time.Parse(tsLayout, ts)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "list responses", err)
	}
	return records, nil
}

// Get loads one archived response with its answers
func (a *Archive) Get(ctx context.Context, id string) (Response, error) {
	row := a.db.QueryRowContext(ctx, `
SELECT id, session_id, catalog, title, fingerprint, mode, answers, submitted_ts
FROM responses WHERE id = ?`, id)

	var r Response
	var mode, answers, ts string
	err := row.Scan(&r.ID, &r.SessionID, &r.Catalog, &r.Title, &r.Fingerprint, &mode, &answers, &ts)
	if stderrors.Is(err, sql.ErrNoRows) {
		return Response{}, errors.NewArchiveNotFoundError(id)
	}
	if err != nil {
		return Response{}, errors.Wrap(errors.ErrCodeFileReadFailed, "read response", err)
	}

	var entries []survey.Entry
	if err := json.Unmarshal([]byte(answers), &entries); err != nil {
		return Response{}, errors.Wrap(errors.ErrCodeFileUnmarshal, "decode answers", err)
	}
	snap, err := survey.RestoreSnapshot(entries)
	if err != nil {
		return Response{}, errors.Wrap(errors.ErrCodeFileUnmarshal, "decode answers", err)
	}

	r.Mode = domain.Mode(mode)
	r.Answers = snap
	r.SubmittedAt, _ = time.Parse(tsLayout, ts)
	return r, nil
}

// Compile-time verification that the sinks implement Sink
var (
	_ Sink = (*Archive)(nil)
	_ Sink = (*FileSink)(nil)
	_ Sink = (*WriterSink)(nil)
	_ Sink = SinkFunc(nil)
)
