package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

const defaultDelayBetweenTry = 2 * time.Second

func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// ConnectWithRetry opens the configured database, retrying until it answers a
// ping or the attempts configured by DB_CONNECT_ATTEMPTS are used up.
func ConnectWithRetry(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		db, err = gorm.Open(dial, &gorm.Config{})
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					if cfg.DBDriver == config.DriverSQLite {
						sqlDB.SetMaxOpenConns(1)
					}
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.WithError(err).
			WithField("attempt", attempt).
			WithField("max_attempts", cfg.DBConnectAttempts).
			Warn("db not ready")

		if attempt < cfg.DBConnectAttempts {
			time.Sleep(defaultDelayBetweenTry)
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBConnectAttempts, err)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Book{},
		&model.LoanRecord{},
		&model.DonationRecord{},
	)
}
