package databases

import (
	"fmt"

	"crypto-tracker/models/constants"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	driverSqlite   = "sqlite"
	driverPostgres = "postgres"
)

type sqlConnection struct {
	driver string
	dsn    string
	db     *gorm.DB
}

// New builds the connection from configuration. With the postgres driver
// every credential must be present; a missing one is a startup failure, not
// something discovered at the first query.
func New() (SqlConnection, error) {
	driver := viper.GetString(constants.DbDriver)
	switch driver {
	case driverSqlite:
		return &sqlConnection{driver: driver, dsn: viper.GetString(constants.SqliteURL)}, nil
	case driverPostgres:
		dsn, err := postgresDSN()
		if err != nil {
			return nil, err
		}
		return &sqlConnection{driver: driver, dsn: dsn}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func postgresDSN() (string, error) {
	required := []string{constants.DbUser, constants.DbPassword, constants.DbHost, constants.DbName}
	for _, key := range required {
		if viper.GetString(key) == "" {
			return "", fmt.Errorf("missing required configuration value: %s", key)
		}
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		viper.GetString(constants.DbHost),
		viper.GetString(constants.DbUser),
		viper.GetString(constants.DbPassword),
		viper.GetString(constants.DbName),
		viper.GetInt(constants.DbPort)), nil
}

func (c *sqlConnection) GetDB() *gorm.DB {
	return c.db
}

func (c *sqlConnection) IsConnected() bool {
	if c.db == nil {
		return false
	}

	dbSQL, errSQL := c.db.DB()
	if errSQL != nil {
		return false
	}

	if errPing := dbSQL.Ping(); errPing != nil {
		return false
	}

	return true
}

func (c *sqlConnection) Run() error {
	var dialector gorm.Dialector
	if c.driver == driverPostgres {
		dialector = postgres.Open(c.dsn)
	} else {
		dialector = sqlite.Open(c.dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return err
	}

	c.db = db
	log.Info().Msgf("Connected to %s", c.driver)
	return nil
}

func (c *sqlConnection) Shutdown() {
	log.Info().Msgf("Shutdown the connection to %s", c.driver)
	dbSQL, err := c.db.DB()
	if err != nil {
		log.Error().Err(err).Msgf("Failed to shutdown database connection")
		return
	}

	if errClose := dbSQL.Close(); errClose != nil {
		log.Error().Err(errClose).Msgf("Failed to shutdown database connection")
	}
}
