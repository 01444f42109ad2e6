package gormstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"bird-sightings-api/internal/platform/apperr"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// mapError traduce errores del driver al error etiquetado de la app.
// Solo las fallas de conectividad se marcan como Storage; el resto
// (constraints, etc.) sube como error interno.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}

	if isConnectivity(err) {
		return apperr.Storage(err)
	}
	return fmt.Errorf("gormstore: %w", err)
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	// database/sql no exporta el error de un *sql.DB cerrado.
	if strings.Contains(err.Error(), "sql: database is closed") {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Postgres (pgx).
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return isPGConnectivityCode(pgErr.Code)
	}

	// MySQL.
	if errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1040, // ER_CON_COUNT_ERROR
			1045, // ER_ACCESS_DENIED_ERROR
			1053, // ER_SERVER_SHUTDOWN
			2002, 2003, 2006, 2013:
			return true
		}
		return false
	}

	// SQLite.
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrCantOpen, sqlite3.ErrIoErr, sqlite3.ErrNotADB:
			return true
		}
	}
	return false
}

// Clase 08 = connection exception; 57P01 admin shutdown; 53300 too many connections.
func isPGConnectivityCode(code string) bool {
	if strings.HasPrefix(code, "08") {
		return true
	}
	switch code {
	case "57P01", "57P02", "57P03", "53300":
		return true
	}
	return false
}
