// Package telemetry optionally records metric snapshots to a local
// SQLite database. Recording is off unless the user passes a database
// path; by default metric values stay ephemeral.
package telemetry

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/alienxs2/tilemon/internal/metrics"
)

const dirPerm = 0o755

// Repository stores snapshots. Record never fails loudly: telemetry is
// best-effort and must not disturb the render loop.
type Repository interface {
	Record(snap *metrics.Snapshot)
	Recent(limit int) ([]Row, error)
	Close() error
}

// Row is one persisted sample.
type Row struct {
	Timestamp time.Time
	Values    map[metrics.MetricID]float64 // normalized values
}

type sqliteRepository struct {
	db *sql.DB
}

// NewRepository opens (creating if needed) the snapshot database at
// path.
func NewRepository(path string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	log.Debug().Str("path", path).Msg("recording snapshots")
	return &sqliteRepository{db: db}, nil
}

func (r *sqliteRepository) Record(snap *metrics.Snapshot) {
	if snap == nil {
		return
	}
	args := make([]any, 0, len(sampleColumns)+1)
	args = append(args, snap.Timestamp.Unix())
	for _, id := range metrics.AllMetrics {
		args = append(args, snap.Get(id).Normalized)
	}
	if _, err := r.db.Exec(insertSampleSQL, args...); err != nil {
		log.Warn().Err(err).Msg("snapshot not recorded")
	}
}

func (r *sqliteRepository) Recent(limit int) ([]Row, error) {
	rows, err := r.db.Query(selectRecentSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var ts int64
		vals := make([]float64, len(metrics.AllMetrics))
		dest := make([]any, 0, len(vals)+1)
		dest = append(dest, &ts)
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := Row{
			Timestamp: time.Unix(ts, 0),
			Values:    make(map[metrics.MetricID]float64, len(vals)),
		}
		for i, id := range metrics.AllMetrics {
			row.Values[id] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}
