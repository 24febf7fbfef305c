package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storerating/database/migrations"
	"storerating/internal/config"
	"storerating/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the gorm pool against Postgres, sizes it from cfg and checks
// that the server answers. Run Migrate separately when AUTO_MIGRATE is off.
func Connect(ctx context.Context, cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:                 newGormLogger(log, cfg.IsDevelopment()),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		// close the pool if ping fails to avoid leaking connections
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info(ctx, "connected to the database")
	return db, nil
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newMigrator(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// Migrate applies every pending up migration.
func Migrate(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.Info(ctx, "database migrations applied")
	return nil
}

// MigrateDown rolls back steps migrations.
func MigrateDown(ctx context.Context, db *gorm.DB, log *logger.Logger, steps int) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	log.Info(ctx, fmt.Sprintf("rolled back %d migration(s)", steps))
	return nil
}

// Version reports the applied schema version; ok is false on a fresh database.
func Version(db *gorm.DB) (version uint, dirty, ok bool, err error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, false, false, err
	}
	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, err
	}
	return version, dirty, true, nil
}

// gormWriter routes gorm's printf-style logger into zerolog.
type gormWriter struct {
	log   *zerolog.Logger
	level zerolog.Level
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.WithLevel(w.level).Str("component", "gorm").Msgf(format, args...)
}

func newGormLogger(log *logger.Logger, verbose bool) gormlogger.Interface {
	level := gormlogger.Warn
	zlevel := zerolog.WarnLevel
	if verbose {
		level = gormlogger.Info
		zlevel = zerolog.DebugLevel
	}
	return gormlogger.New(gormWriter{log: log.Zerolog(context.Background()), level: zlevel}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
