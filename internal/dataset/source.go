package dataset

import (
	"context"
	"fmt"
)

// Options selects where the raw dataset is loaded from at startup.
type Options struct {
	Source string // csv, postgres, sqlite
	Path   string // csv / sqlite file path
	URL    string // postgres connection string
	Table  string // postgres / sqlite table name
}

// Load reads the full dataset from the configured source.
func Load(ctx context.Context, opts Options) ([]Market, error) {
	switch opts.Source {
	case "csv", "":
		return LoadCSV(opts.Path)
	case "postgres":
		return LoadPostgres(ctx, opts.URL, opts.Table)
	case "sqlite":
		return LoadSQLite(opts.Path, opts.Table)
	default:
		return nil, fmt.Errorf("unknown dataset source %q", opts.Source)
	}
}
