// Package cursor persists the export watermark: the created_at of the
// newest order already appended to the sheet.
package cursor

import (
	"context"
	"fmt"

	"seroter.com/ordersheet/config"
)

// Store reads and writes a single cursor value. Read returns "" when
// nothing has been persisted yet.
type Store interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, timestamp string) error
	Close() error
}

// Open returns the backend selected by cfg.Backend.
func Open(ctx context.Context, cfg config.CursorConfig) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore(cfg.File), nil
	case "postgres":
		return OpenPostgres(ctx, cfg.DatabaseURI, cfg.Name)
	case "spanner":
		return OpenSpanner(ctx, cfg.SpannerURI, cfg.Name)
	default:
		return nil, fmt.Errorf("unknown cursor backend %q", cfg.Backend)
	}
}
