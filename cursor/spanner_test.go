package cursor

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner/spannertest"
	"cloud.google.com/go/spanner/spansql"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func newSpannerStore(t *testing.T) *SpannerStore {
	t.Helper()

	srv, err := spannertest.NewServer("localhost:0")
	if err != nil {
		t.Fatalf("start spannertest: %v", err)
	}
	t.Cleanup(srv.Close)

	ddl, err := spansql.ParseDDL("", SpannerDDL)
	if err != nil {
		t.Fatalf("parse ddl: %v", err)
	}
	if err := srv.UpdateDDL(ddl); err != nil {
		t.Fatalf("apply ddl: %v", err)
	}

	conn, err := grpc.Dial(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial spannertest: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	s, err := OpenSpanner(context.Background(), "projects/p/instances/i/databases/d", "orders", option.WithGRPCConn(conn))
	if err != nil {
		t.Fatalf("OpenSpanner: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSpannerStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSpannerStore(t)

	got, err := s.Read(ctx)
	if err != nil {
		t.Fatalf("Read on empty table: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty cursor, got %q", got)
	}

	for _, ts := range []string{"2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z"} {
		if err := s.Write(ctx, ts); err != nil {
			t.Fatalf("Write(%q): %v", ts, err)
		}
		got, err := s.Read(ctx)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if got != ts {
			t.Fatalf("expected %q, got %q", ts, got)
		}
	}
}
