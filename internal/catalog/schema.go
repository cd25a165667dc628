package catalog

// Schema DDL for the local-field table. The galois_group column records the
// Galois group of the field's Galois closure (C2, C4, V4, D4); inertia is
// the inertia subgroup label or "unram"; slopes keeps the ramification
// filtration in the source database's bracket notation, parsed on scan.
const createLocalFields = `CREATE TABLE local_fields (
    galois_group TEXT NOT NULL,
    c INTEGER NOT NULL,
    e INTEGER NOT NULL,
    f INTEGER NOT NULL,
    d TEXT NOT NULL,
    eps TEXT NOT NULL,
    poly TEXT NOT NULL,
    inertia TEXT NOT NULL,
    slopes TEXT NOT NULL,
    deg2_subfield TEXT
);`

const createGroupIndex = `CREATE INDEX idx_local_fields_group
    ON local_fields (galois_group);`
