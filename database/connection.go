package database

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnknownDriver = errors.New("unknown database driver")

type Migrator func(db *gorm.DB) error

type Configuration struct {
	driver     string
	dsn        string
	migrations []Migrator
}

type Configurator func(c *Configuration)

func SetDriver(driver string) Configurator {
	return func(c *Configuration) {
		c.driver = driver
	}
}

func SetDsn(dsn string) Configurator {
	return func(c *Configuration) {
		c.dsn = dsn
	}
}

func SetMigrations(migrations ...Migrator) Configurator {
	return func(c *Configuration) {
		c.migrations = append(c.migrations, migrations...)
	}
}

func dialector(c Configuration) (gorm.Dialector, error) {
	switch strings.ToLower(c.driver) {
	case "postgres", "postgresql":
		return postgres.Open(c.dsn), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(c.dsn), nil
	}
	return nil, ErrUnknownDriver
}

// Open connects and runs every registered migration.
func Open(l logrus.FieldLogger, configurators ...Configurator) (*gorm.DB, error) {
	c := Configuration{driver: "sqlite", dsn: "file::memory:?cache=shared"}
	for _, configurator := range configurators {
		configurator(&c)
	}

	d, err := dialector(c)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(d, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, err
	}
	for _, m := range c.migrations {
		if err = m(db); err != nil {
			return nil, err
		}
	}
	l.Infof("Connected to [%s] database.", c.driver)
	return db, nil
}

func Connect(l logrus.FieldLogger, configurators ...Configurator) *gorm.DB {
	db, err := Open(l, configurators...)
	if err != nil {
		l.WithError(err).Fatalf("Failed to connect to database.")
	}
	return db
}
