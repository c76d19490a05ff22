// Package journal records the results of evolution runs in a SQLite
// database: configuration, winner, score and an optional fitness
// trajectory. It stores outcomes only, never populations, so a journal is
// a lab notebook rather than a checkpoint.
package journal

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/machinery-systems/genepool-go/pkg/errors"
)

// Entry is one journaled run.
type Entry struct {
	RunID               string
	Problem             string
	PopulationSize      int
	MutationProbability float64
	CullThreshold       *float64
	EliteChildren       int
	Seed                *int64
	Generations         int
	BestFitness         float64
	BestDecoded         string
	Duration            time.Duration
	CreatedAt           time.Time
	Trajectory          []Sample
}

// Sample is one trajectory point: the best fitness observed at a
// generation.
type Sample struct {
	Generation  int
	BestFitness float64
}

// Journal is a SQLite-backed run log.
type Journal struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	initialized sync.Once
}

// Open creates or opens a journal at the given path. ":memory:" keeps the
// journal in memory, which suits tests.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.StorageFailed, "failed to open journal database"),
			errors.Fields{"path": path},
		)
	}

	journal := &Journal{
		db:   db,
		path: path,
	}
	if err := journal.ensureInitialized(); err != nil {
		return nil, err
	}
	return journal, nil
}

func (j *Journal) ensureInitialized() error {
	var initErr error
	j.initialized.Do(func() {
		// Enable WAL mode for better concurrency
		if _, err := j.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			initErr = errors.Wrap(err, errors.StorageFailed, "failed to enable WAL mode")
			return
		}

		query := `
        CREATE TABLE IF NOT EXISTS runs (
            run_id TEXT PRIMARY KEY,
            problem TEXT NOT NULL,
            population_size INTEGER NOT NULL,
            mutation_probability REAL NOT NULL,
            cull_threshold REAL,
            elite_children INTEGER NOT NULL,
            seed INTEGER,
            generations INTEGER NOT NULL,
            best_fitness REAL NOT NULL,
            best_decoded TEXT NOT NULL,
            duration_ms INTEGER NOT NULL,
            created_at DATETIME NOT NULL
        );

        CREATE INDEX IF NOT EXISTS idx_runs_created_at
        ON runs(created_at);

        CREATE TABLE IF NOT EXISTS trajectory (
            run_id TEXT NOT NULL REFERENCES runs(run_id),
            generation INTEGER NOT NULL,
            best_fitness REAL NOT NULL,
            PRIMARY KEY (run_id, generation)
        );
        `

		if _, err := j.db.Exec(query); err != nil {
			initErr = errors.WithFields(
				errors.Wrap(err, errors.StorageFailed, "failed to initialize journal schema"),
				errors.Fields{"path": j.path},
			)
			return
		}
	})
	return initErr
}

// Record stores one run and its trajectory.
func (j *Journal) Record(ctx context.Context, entry Entry) error {
	if entry.RunID == "" {
		return errors.New(errors.InvalidInput, "entry is missing a run id")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.StorageFailed, "failed to begin transaction"),
			errors.Fields{"run_id": entry.RunID},
		)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO runs (
            run_id, problem, population_size, mutation_probability,
            cull_threshold, elite_children, seed, generations,
            best_fitness, best_decoded, duration_ms, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID,
		entry.Problem,
		entry.PopulationSize,
		entry.MutationProbability,
		entry.CullThreshold,
		entry.EliteChildren,
		entry.Seed,
		entry.Generations,
		entry.BestFitness,
		entry.BestDecoded,
		entry.Duration.Milliseconds(),
		entry.CreatedAt,
	)
	if err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.StorageFailed, "failed to record run"),
			errors.Fields{"run_id": entry.RunID},
		)
	}

	for _, sample := range entry.Trajectory {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO trajectory (run_id, generation, best_fitness) VALUES (?, ?, ?)",
			entry.RunID, sample.Generation, sample.BestFitness)
		if err != nil {
			return errors.WithFields(
				errors.Wrap(err, errors.StorageFailed, "failed to record trajectory sample"),
				errors.Fields{"run_id": entry.RunID, "generation": sample.Generation},
			)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.StorageFailed, "failed to commit run"),
			errors.Fields{"run_id": entry.RunID},
		)
	}
	return nil
}

// Get returns one run with its full trajectory.
func (j *Journal) Get(ctx context.Context, runID string) (*Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	row := j.db.QueryRowContext(ctx, `
        SELECT run_id, problem, population_size, mutation_probability,
               cull_threshold, elite_children, seed, generations,
               best_fitness, best_decoded, duration_ms, created_at
        FROM runs WHERE run_id = ?`, runID)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, errors.WithFields(
			errors.New(errors.NotFound, "run not found"),
			errors.Fields{"run_id": runID},
		)
	}
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.StorageFailed, "failed to read run"),
			errors.Fields{"run_id": runID},
		)
	}

	rows, err := j.db.QueryContext(ctx,
		"SELECT generation, best_fitness FROM trajectory WHERE run_id = ? ORDER BY generation",
		runID)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.StorageFailed, "failed to read trajectory"),
			errors.Fields{"run_id": runID},
		)
	}
	defer rows.Close()

	for rows.Next() {
		var sample Sample
		if err := rows.Scan(&sample.Generation, &sample.BestFitness); err != nil {
			return nil, errors.Wrap(err, errors.StorageFailed, "failed to scan trajectory sample")
		}
		entry.Trajectory = append(entry.Trajectory, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.StorageFailed, "failed to iterate trajectory")
	}

	return entry, nil
}

// List returns recent runs, newest first, without their trajectories.
// A non-positive limit returns everything.
func (j *Journal) List(ctx context.Context, limit int) ([]Entry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	query := `
        SELECT run_id, problem, population_size, mutation_probability,
               cull_threshold, elite_children, seed, generations,
               best_fitness, best_decoded, duration_ms, created_at
        FROM runs ORDER BY created_at DESC, run_id`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.StorageFailed, "failed to list runs")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.StorageFailed, "failed to scan run")
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.StorageFailed, "failed to iterate runs")
	}

	return entries, nil
}

// Close releases the underlying database.
func (j *Journal) Close() error {
	if err := j.db.Close(); err != nil {
		return errors.Wrap(err, errors.StorageFailed, "failed to close journal")
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		entry         Entry
		cullThreshold sql.NullFloat64
		seed          sql.NullInt64
		durationMS    int64
	)

	err := row.Scan(
		&entry.RunID,
		&entry.Problem,
		&entry.PopulationSize,
		&entry.MutationProbability,
		&cullThreshold,
		&entry.EliteChildren,
		&seed,
		&entry.Generations,
		&entry.BestFitness,
		&entry.BestDecoded,
		&durationMS,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cullThreshold.Valid {
		entry.CullThreshold = &cullThreshold.Float64
	}
	if seed.Valid {
		entry.Seed = &seed.Int64
	}
	entry.Duration = time.Duration(durationMS) * time.Millisecond

	return &entry, nil
}
