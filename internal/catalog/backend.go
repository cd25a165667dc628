package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// Catalog lifecycle and query errors.
var (
	ErrCatalogDetached = errors.New("catalog is detached")
	ErrAlreadyAttached = errors.New("catalog is already attached")
	ErrUnknownGroup    = errors.New("unknown galois group")
)

// Backend holds the in-memory SQLite database of local fields. The zero
// value is not usable; construct with New and call Attach before querying.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// New creates a detached catalog backend.
func New() *Backend {
	return &Backend{}
}

// Attach opens the in-memory database, creates the schema, and loads the
// embedded field tables in one transaction. Returns ErrAlreadyAttached on a
// second call.
func (b *Backend) Attach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return ErrAlreadyAttached
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("open catalog database: %w", err)
	}
	// The in-memory database lives and dies with this single connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createLocalFields); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := db.Exec(createGroupIndex); err != nil {
		db.Close()
		return fmt.Errorf("create index: %w", err)
	}

	if err := loadEmbedded(db); err != nil {
		db.Close()
		return fmt.Errorf("load embedded field data: %w", err)
	}

	b.db = db
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached catalog
// succeeds.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	err := b.db.Close()
	b.db = nil
	return err
}

// FieldsByGroup returns the local fields whose Galois closure has the given
// group, in catalog order (conductor, then polynomial). Returns
// ErrUnknownGroup for a group label outside the catalog and
// ErrCatalogDetached when called before Attach.
func (b *Backend) FieldsByGroup(group string) ([]LocalField, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, ErrCatalogDetached
	}
	if !knownGroups[group] {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}

	rows, err := b.db.Query(
		`SELECT galois_group, c, e, f, d, eps, poly, inertia, slopes, deg2_subfield
		   FROM local_fields WHERE galois_group = ? ORDER BY rowid`, group)
	if err != nil {
		return nil, fmt.Errorf("query fields for %s: %w", group, err)
	}
	defer rows.Close()

	var out []LocalField
	for rows.Next() {
		var lf LocalField
		var slopes string
		var deg2 sql.NullString
		if err := rows.Scan(&lf.Group, &lf.C, &lf.E, &lf.F, &lf.D, &lf.Eps,
			&lf.Poly, &lf.Inertia, &slopes, &deg2); err != nil {
			return nil, fmt.Errorf("scan field row: %w", err)
		}
		lf.Slopes, err = parseSlopes(slopes)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", lf.Poly, err)
		}
		if deg2.Valid {
			lf.Deg2Subfield = deg2.String
		}
		out = append(out, lf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate field rows: %w", err)
	}
	return out, nil
}

// Count returns the total number of fields in the catalog.
func (b *Backend) Count() (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return 0, ErrCatalogDetached
	}
	var n int
	if err := b.db.QueryRow(`SELECT COUNT(*) FROM local_fields`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count fields: %w", err)
	}
	return n, nil
}
