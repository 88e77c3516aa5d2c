package database

import (
	"fmt"
	"os"
	"path/filepath"

	"granja-app/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// OpenConnection opens the configured database. The default is a local
// SQLite file, the other drivers are kept for installs that already run a
// database server.
func OpenConnection() (*gorm.DB, error) {
	switch config.DBDriver {
	case "sqlite":
		if dir := filepath.Dir(config.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBName, config.DBPort)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "mssql", "sqlserver":
		dsn := "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" + config.DBHost + ":" + config.DBPort + "?database=" + config.DBName
		return gorm.Open(sqlserver.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB driver: %s", config.DBDriver)
	}
}
