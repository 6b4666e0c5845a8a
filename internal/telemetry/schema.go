package telemetry

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/alienxs2/tilemon/internal/metrics"
)

// One REAL column per metric keeps queries trivial; the metric set is
// fixed so there is no migration story to carry.
var sampleColumns = func() []string {
	cols := make([]string, len(metrics.AllMetrics))
	for i, id := range metrics.AllMetrics {
		cols[i] = string(id)
	}
	return cols
}()

var (
	insertSampleSQL = fmt.Sprintf(
		"INSERT INTO samples (timestamp, %s) VALUES (?%s)",
		strings.Join(sampleColumns, ", "),
		strings.Repeat(", ?", len(sampleColumns)),
	)
	selectRecentSQL = fmt.Sprintf(
		"SELECT timestamp, %s FROM samples ORDER BY timestamp DESC LIMIT ?",
		strings.Join(sampleColumns, ", "),
	)
)

func initSchema(db *sql.DB) error {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS samples (timestamp INTEGER NOT NULL")
	for _, col := range sampleColumns {
		fmt.Fprintf(&b, ", %s REAL NOT NULL DEFAULT 0", col)
	}
	b.WriteString(")")
	if _, err := db.Exec(b.String()); err != nil {
		return err
	}
	_, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_samples_timestamp ON samples (timestamp)")
	return err
}
