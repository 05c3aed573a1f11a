package store

// One row per execution; failure holds the JSON encoded *interpreter.Failure.
const createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    input TEXT NOT NULL,
    x INTEGER NOT NULL,
    y INTEGER NOT NULL,
    facing TEXT NOT NULL,
    placed INTEGER NOT NULL,
    properly_placed INTEGER NOT NULL,
    report TEXT NOT NULL,
    failure TEXT
);`

const createRunsCreatedIndex = `CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at);`

var schema = []string{
	createRuns,
	createRunsCreatedIndex,
}
