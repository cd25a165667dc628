// Embedded CSV loading for Attach. The CSV layout mirrors the source
// database exports: C2 and V4 fields have nine columns, C4 and D4 fields
// carry an extra deg2_subfield column.
package catalog

import (
	"database/sql"
	"embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

//go:embed data/*.csv
var dataFS embed.FS

// fileTableMapping associates each embedded CSV with its Galois group and
// whether rows carry the quadratic-subfield column.
var fileTableMapping = []struct {
	file    string
	group   string
	hasDeg2 bool
}{
	{"data/c2.csv", GroupC2, false},
	{"data/c4.csv", GroupC4, true},
	{"data/v4.csv", GroupV4, false},
	{"data/d4.csv", GroupD4, true},
}

// loadEmbedded reads every embedded CSV and inserts the rows in a single
// transaction: either the whole catalog loads or the database stays empty.
func loadEmbedded(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin load transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO local_fields
		(galois_group, c, e, f, d, eps, poly, inertia, slopes, deg2_subfield)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, mapping := range fileTableMapping {
		if err := loadFile(stmt, mapping.file, mapping.group, mapping.hasDeg2); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load transaction: %w", err)
	}
	return nil
}

// loadFile parses one embedded CSV and inserts its rows through stmt.
// The first line is a header and is skipped.
func loadFile(stmt *sql.Stmt, file, group string, hasDeg2 bool) error {
	raw, err := dataFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%s: empty field table", file)
	}

	wantCols := 8
	if hasDeg2 {
		wantCols = 9
	}
	for i, rec := range records[1:] {
		if len(rec) != wantCols {
			return fmt.Errorf("%s line %d: %d columns, want %d", file, i+2, len(rec), wantCols)
		}
		c, e, f, err := parseCEF(rec)
		if err != nil {
			return fmt.Errorf("%s line %d: %w", file, i+2, err)
		}
		// Validate the slope notation up front so a malformed row fails the
		// load instead of a later query.
		if _, err := parseSlopes(rec[7]); err != nil {
			return fmt.Errorf("%s line %d: %w", file, i+2, err)
		}
		var deg2 any
		if hasDeg2 {
			deg2 = rec[8]
		}
		if _, err := stmt.Exec(group, c, e, f, rec[3], rec[4], rec[5], rec[6], rec[7], deg2); err != nil {
			return fmt.Errorf("%s line %d: insert: %w", file, i+2, err)
		}
	}
	return nil
}

// parseCEF parses the integer conductor exponent, ramification index, and
// residue degree columns.
func parseCEF(rec []string) (c, e, f int, err error) {
	if c, err = strconv.Atoi(rec[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("conductor %q: %w", rec[0], err)
	}
	if e, err = strconv.Atoi(rec[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("ramification index %q: %w", rec[1], err)
	}
	if f, err = strconv.Atoi(rec[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("residue degree %q: %w", rec[2], err)
	}
	return c, e, f, nil
}
