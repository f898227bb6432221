package cursor

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
)

// SpannerDDL creates the table SpannerStore expects.
const SpannerDDL = `CREATE TABLE ExportCursors (
	Name STRING(64) NOT NULL,
	Value STRING(64) NOT NULL,
	UpdatedAt TIMESTAMP NOT NULL
) PRIMARY KEY (Name)`

var spannerColumns = []string{"Name", "Value", "UpdatedAt"}

// SpannerStore keeps cursors in the ExportCursors table of a Cloud Spanner
// database.
type SpannerStore struct {
	client *spanner.Client
	name   string
}

func OpenSpanner(ctx context.Context, db, name string, opts ...option.ClientOption) (*SpannerStore, error) {
	client, err := spanner.NewClient(ctx, db, opts...)
	if err != nil {
		return nil, fmt.Errorf("create spanner client: %w", err)
	}
	return &SpannerStore{client: client, name: name}, nil
}

func (s *SpannerStore) Read(ctx context.Context) (string, error) {
	row, err := s.client.Single().ReadRow(ctx, "ExportCursors", spanner.Key{s.name}, []string{"Value"})
	if spanner.ErrCode(err) == codes.NotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read cursor row: %w", err)
	}
	var value string
	if err := row.Columns(&value); err != nil {
		return "", fmt.Errorf("decode cursor row: %w", err)
	}
	return value, nil
}

func (s *SpannerStore) Write(ctx context.Context, timestamp string) error {
	m := []*spanner.Mutation{
		spanner.InsertOrUpdate("ExportCursors", spannerColumns, []interface{}{s.name, timestamp, time.Now().UTC()}),
	}
	if _, err := s.client.Apply(ctx, m); err != nil {
		return fmt.Errorf("apply cursor mutation: %w", err)
	}
	return nil
}

func (s *SpannerStore) Close() error {
	s.client.Close()
	return nil
}
