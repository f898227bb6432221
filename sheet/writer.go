// Package sheet appends exported orders to a Google Sheet.
package sheet

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"seroter.com/ordersheet/config"
	"seroter.com/ordersheet/cursor"
	"seroter.com/ordersheet/model"
)

const (
	valueInputRaw  = "RAW"
	insertDataRows = "INSERT_ROWS"
)

// Writer appends orders to a fixed range and advances the cursor once the
// append succeeds.
type Writer struct {
	cfg    config.SheetConfig
	cursor cursor.Store
	opts   []option.ClientOption
}

// NewWriter builds a Writer. Extra client options are applied after the
// credentials, so tests can point the client at a local endpoint.
func NewWriter(cfg config.SheetConfig, store cursor.Store, opts ...option.ClientOption) *Writer {
	return &Writer{cfg: cfg, cursor: store, opts: opts}
}

// Write appends one row per order in a single call and then stores
// orders[0].CreatedAt as the new cursor. It returns the number of rows the
// Sheets API reports as appended. An empty batch is a no-op.
func (w *Writer) Write(ctx context.Context, orders []model.Order) (int64, error) {
	if len(orders) == 0 {
		slog.Info("no orders to update in sheet")
		return 0, nil
	}

	srv, err := w.service(ctx)
	if err != nil {
		return 0, err
	}

	vr := &sheets.ValueRange{Values: model.Rows(orders)}
	resp, err := srv.Spreadsheets.Values.Append(w.cfg.SpreadsheetId, w.cfg.Range, vr).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataRows).
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("append rows: %w", err)
	}

	appended := int64(len(orders))
	if resp.Updates != nil {
		appended = resp.Updates.UpdatedRows
	}
	slog.Info("sheet updated", "spreadsheet", w.cfg.SpreadsheetId, "rows", appended)

	if err := w.cursor.Write(ctx, orders[0].CreatedAt); err != nil {
		return appended, fmt.Errorf("advance cursor: %w", err)
	}
	return appended, nil
}

// service authenticates with the configured service-account key, or with
// Application Default Credentials when none is set.
func (w *Writer) service(ctx context.Context) (*sheets.Service, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if w.cfg.CredentialsFile != "" {
		data, err := os.ReadFile(w.cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read google credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(data))
	}
	opts = append(opts, w.opts...)

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return srv, nil
}
