package sqlstore

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jwalitptl/hospital-api/internal/config"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
	"github.com/jwalitptl/hospital-api/pkg/metrics"
)

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

// Row is one result record keyed by column name.
type Row map[string]interface{}

// DB owns the single connection the API runs its queries on.
type DB struct {
	db      *sqlx.DB
	metrics *metrics.Metrics

	closeOnce sync.Once
	closeErr  error
}

// Open prepares the connection handle for cfg. No network traffic happens
// until Connect or the first query.
func Open(cfg config.DatabaseConfig) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverPostgres
	}

	dsn, err := DSN(driver, cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, apperrors.Connection(fmt.Errorf("failed to open %s database: %w", driver, err))
	}

	return newDB(db), nil
}

func newDB(db *sqlx.DB) *DB {
	// Everything shares one connection; overlapping queries queue on it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
	return &DB{db: db}
}

// DSN renders the data source name for driver.
func DSN(driver string, cfg config.DatabaseConfig) (string, error) {
	switch driver {
	case DriverPostgres, DriverPgx:
		port := cfg.Port
		if port == 0 {
			port = 5432
		}
		sslmode := cfg.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		pairs := []string{
			kv("host", cfg.Host),
			kv("port", strconv.Itoa(port)),
			kv("user", cfg.User),
			kv("password", cfg.Password),
			kv("dbname", cfg.Name),
			kv("sslmode", sslmode),
		}
		return strings.Join(pairs, " "), nil
	case DriverMySQL:
		port := cfg.Port
		if port == 0 {
			port = 3306
		}
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
		mc.DBName = cfg.Name
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	case DriverSQLite:
		if cfg.Name == "" {
			return ":memory:", nil
		}
		return cfg.Name, nil
	default:
		return "", apperrors.Connection(fmt.Errorf("unsupported database driver %q", driver))
	}
}

// kv quotes a libpq keyword/value pair.
func kv(key, value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)
	return key + "='" + value + "'"
}

// Instrument records every query on m.
func (d *DB) Instrument(m *metrics.Metrics) *DB {
	d.metrics = m
	return d
}

// Connect establishes the connection.
func (d *DB) Connect(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return apperrors.Connection(fmt.Errorf("failed to ping database: %w", err))
	}
	return nil
}

// Ping reports whether the connection is usable.
func (d *DB) Ping(ctx context.Context) error {
	return d.Connect(ctx)
}

// Query runs query with args bound and returns every row as a column map.
// Placeholders are written as '?' and rebound for the driver.
func (d *DB) Query(ctx context.Context, query string, args ...interface{}) (result []Row, err error) {
	defer func(start time.Time) { d.metrics.ObserveQuery("query", start, err) }(time.Now())

	rows, err := d.db.QueryxContext(ctx, d.db.Rebind(query), args...)
	if err != nil {
		return nil, apperrors.Query(err)
	}
	defer rows.Close()

	result = []Row{}
	for rows.Next() {
		row := Row{}
		if err := rows.MapScan(row); err != nil {
			return nil, apperrors.Query(err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Query(err)
	}

	return result, nil
}

// Select runs query with args bound and scans the rows into dest, a pointer
// to a slice of structs. op labels the query in metrics.
func (d *DB) Select(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	start := time.Now()
	err := d.db.SelectContext(ctx, dest, d.db.Rebind(query), args...)
	d.metrics.ObserveQuery(op, start, err)
	if err != nil {
		return apperrors.Query(err)
	}
	return nil
}

// DriverName returns the driver the handle was opened with.
func (d *DB) DriverName() string {
	return d.db.DriverName()
}

// Close releases the connection. Only the first call does any work; later
// calls return its result.
func (d *DB) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = d.db.Close()
	})
	return d.closeErr
}
