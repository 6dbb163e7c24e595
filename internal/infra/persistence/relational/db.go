// Package relational implements the repositories on a relational database through GORM.
// PostgreSQL and SQLite share the same models and queries.
package relational

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/lifecycle"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
	sqliteForeignKeys           = "_pragma=foreign_keys(1)"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database selected by store.driver and manages it with the app lifecycle.
// The schema is migrated on start.
func New(params Params) (*gorm.DB, error) {
	driver := params.Config.Store.Driver

	var (
		db  *gorm.DB
		err error
	)

	switch driver {
	case constants.StoreDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres config is required for the postgres driver")
		}

		db, err = pgLib.New(params.Config.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
	case constants.StoreDriverSQLite:
		if params.Config.SQLite == nil || params.Config.SQLite.Path == "" {
			return nil, errors.New("sqlite path is required for the sqlite driver")
		}

		db, err = OpenSQLite(params.Config.SQLite.Path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("store driver %q is not relational", driver)
	}

	db = configure(db, newQueryLogger(params.Logger, driver, params.Config.Store.SlowQueryThreshold, params.Config.Env.Debug))

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", driver)
			}

			if err := Migrate(ctx, db); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, driver, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// OpenSQLite opens a SQLite database at path with foreign keys enforced. SQLite serialises writers,
// so the pool holds a single connection; this also keeps ":memory:" databases on one connection.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&" + sqliteForeignKeys
	} else {
		dsn += "?" + sqliteForeignKeys
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// configure applies the session settings shared by every driver.
func configure(db *gorm.DB, gormLogger logger.Interface) *gorm.DB {
	// Constraint failures surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
	db.Config.TranslateError = true

	return db.Session(&gorm.Session{
		// Multi-step writes use explicit transactions.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
}

// Migrate creates or updates every table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, driver string, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.String("driver", driver),
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
