package lexicon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// undefinedTable is the SQLSTATE Postgres reports for a missing relation.
const undefinedTable = "42P01"

// PostgresConfig describes the database holding word tables.
type PostgresConfig struct {
	ConnectionString string        `env:"DATABASE_URL"`
	Table            string        `env:"CAESAR_PG_TABLE" envDefault:"lexicon_words"` // Table with a text column named "word".
	MaxConns         int32         `env:"DATABASE_MAX_CONNS" envDefault:"4"`
	RetryAttempts    int           `env:"DATABASE_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval    time.Duration `env:"DATABASE_RETRY_INTERVAL" envDefault:"2s"`
}

// Querier is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource loads words from the "word" column of a table. The table
// name may be schema-qualified ("lexicon.english").
type PostgresSource struct {
	db    Querier
	table string
}

// NewPostgresSource returns a source reading every row of table.
func NewPostgresSource(db Querier, table string) *PostgresSource {
	return &PostgresSource{db: db, table: table}
}

func (s *PostgresSource) Name() string { return "postgres:" + s.table }

// Load selects all words from the table.
func (s *PostgresSource) Load(ctx context.Context) (*Lexicon, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	query := fmt.Sprintf("SELECT word FROM %s", pgx.Identifier(strings.Split(s.table, ".")).Sanitize())
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
			return nil, fmt.Errorf("%w: table %s", ErrSourceNotFound, s.table)
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	words, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	lex := New(words...)
	if lex.Len() == 0 {
		return nil, ErrEmptyLexicon
	}
	return lex, nil
}

// ConnectPostgres opens a connection pool and pings it, retrying with a
// linearly growing pause between attempts.
func ConnectPostgres(ctx context.Context, cfg PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrInvalidDatabaseURL, err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	attempts := max(cfg.RetryAttempts, 1)
	var lastErr error
	for i := range attempts {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrDatabaseNotReady, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrDatabaseNotReady, lastErr)
}
