package postgres

import (
	"fmt"
	"strings"

	"github.com/muhammad-hassn/portfolio/config"
)

// DSN renders a keyword/value connection string understood by both lib/pq and pgx.
func DSN(cfg *config.DatabaseConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Name, sslMode,
	)
	if cfg.Password != "" {
		dsn += " password='" + quoteReplacer.Replace(cfg.Password) + "'"
	}
	return dsn
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
