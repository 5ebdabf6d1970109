// Package mysql persists the course catalog and its ratings on MySQL.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// parseTime makes the driver scan DATETIME columns into time.Time, which the
// catalog and rating timestamps rely on.
const driverParamStr string = "?parseTime=true"

// Connect opens a connection pool against uri and verifies it is reachable.
func Connect(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+driverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}
