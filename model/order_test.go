package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderRow(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  []interface{}
	}{
		{
			name: "all fields",
			order: Order{
				Id:              1001,
				CreatedAt:       "2024-03-01T10:00:00-05:00",
				Email:           "a@example.com",
				TotalPrice:      "19.99",
				Currency:        "USD",
				FinancialStatus: "paid",
			},
			want: []interface{}{int64(1001), "2024-03-01T10:00:00-05:00", "a@example.com", "19.99", "USD", "paid"},
		},
		{
			name: "missing email",
			order: Order{
				Id:              1002,
				CreatedAt:       "2024-03-01T11:00:00-05:00",
				TotalPrice:      "5.00",
				Currency:        "EUR",
				FinancialStatus: "pending",
			},
			want: []interface{}{int64(1002), "2024-03-01T11:00:00-05:00", "N/A", "5.00", "EUR", "pending"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.order.Row()); diff != "" {
				t.Fatalf("Row() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRowsKeepsOrder(t *testing.T) {
	orders := []Order{{Id: 3}, {Id: 1}, {Id: 2}}
	rows := Rows(orders)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, want := range []int64{3, 1, 2} {
		if rows[i][0] != want {
			t.Fatalf("row %d: expected id %d, got %v", i, want, rows[i][0])
		}
	}
}
