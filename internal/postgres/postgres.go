package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	pgxslog "github.com/mcosta74/pgx-slog"
)

const (
	DefaultMaxConns        = 16
	DefaultMinConns        = 0
	DefaultApplicationName = "nftsnap"
)

var _ DB = (*pgxpool.Pool)(nil)

// DB is the subset of a pgx pool the repositories use.
type DB interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	Begin(context.Context) (pgx.Tx, error)
}

type Config struct {
	Host     string `mapstructure:"host"`     // 127.0.0.1
	Port     string `mapstructure:"port"`     // 5432
	User     string `mapstructure:"user"`     //
	Password string `mapstructure:"password"` //
	DBName   string `mapstructure:"dbname"`   // postgres
	SSLMode  string `mapstructure:"sslmode"`  // prefer
	URL      string `mapstructure:"url"`      // overrides every field above

	MaxConns int32 `mapstructure:"max_conns"` // 16
	MinConns int32 `mapstructure:"min_conns"` // 0

	// Debug traces every query.
	Debug bool `mapstructure:"debug"`
}

// NewPool opens a connection pool and pings it.
func NewPool(ctx context.Context, conf Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.String())
	if err != nil {
		return nil, errors.Wrap(err, "invalid postgres config")
	}
	poolConfig.MaxConns = utils.Default(conf.MaxConns, DefaultMaxConns)
	poolConfig.MinConns = utils.Default(conf.MinConns, DefaultMinConns)
	poolConfig.ConnConfig.Tracer = conf.queryTracer()
	if _, ok := poolConfig.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolConfig.ConnConfig.RuntimeParams["application_name"] = DefaultApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to connect to the database")
	}
	return pool, nil
}

// String returns the connection string, URL if set, otherwise a keyword/value DSN.
func (conf Config) String() string {
	if conf.URL != "" {
		return conf.URL
	}

	kv := []string{
		"host=" + utils.Default(conf.Host, "127.0.0.1"),
		"port=" + utils.Default(conf.Port, "5432"),
		"dbname=" + utils.Default(conf.DBName, "postgres"),
		"sslmode=" + utils.Default(conf.SSLMode, "prefer"),
	}
	if conf.User != "" {
		kv = append(kv, "user="+conf.User)
	}
	if conf.Password != "" {
		kv = append(kv, fmt.Sprintf("password=%s", conf.Password))
	}
	return strings.Join(kv, " ")
}

func (conf Config) queryTracer() pgx.QueryTracer {
	level := tracelog.LogLevelError
	if conf.Debug {
		level = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxslog.NewLogger(logger.With("package", "postgres")),
		LogLevel: level,
	}
}
