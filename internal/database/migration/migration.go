package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ocrapi/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_recognitions",
		SQL: `CREATE TABLE IF NOT EXISTS recognitions (
  id           UUID        PRIMARY KEY,
  filename     TEXT        NOT NULL,
  content_type TEXT        NOT NULL,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  text         TEXT        NOT NULL,
  engine       TEXT        NOT NULL,
  storage_path TEXT        NOT NULL DEFAULT '',
  duration_ms  BIGINT      NOT NULL DEFAULT 0,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_recognitions_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_recognitions_created_at ON recognitions (created_at DESC, id DESC);`,
	},
}

// EnsureMigrated creates the recognitions schema unless the sentinel table already exists.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *logging.Logger, dbHost string) error {
	start := time.Now()
	base := func(extra logging.Fields) logging.Fields {
		f := logging.Fields{"component": "database", "db_host": dbHost}
		for k, v := range extra {
			f[k] = v
		}
		return f
	}

	log.Write(base(logging.Fields{"event": "db_migration_check", "status": "starting"}))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.recognitions') IS NOT NULL").Scan(&exists); err != nil {
		log.Write(base(logging.Fields{
			"level":         "error",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms":   time.Since(start).Milliseconds(),
		}))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Write(base(logging.Fields{
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"duration_ms": time.Since(start).Milliseconds(),
		}))
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Write(base(logging.Fields{
				"level":            "error",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Write(base(logging.Fields{
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}))
	}

	log.Write(base(logging.Fields{
		"event":       "db_migration_success",
		"status":      "success",
		"duration_ms": time.Since(start).Milliseconds(),
	}))
	return nil
}
