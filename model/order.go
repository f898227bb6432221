package model

// Order is the projection of a Shopify order that ends up in the sheet.
// Fields the export does not use are dropped during decoding.
type Order struct {
	Id              int64  `json:"id"`
	CreatedAt       string `json:"created_at"`
	Email           string `json:"email"`
	TotalPrice      string `json:"total_price"`
	Currency        string `json:"currency"`
	FinancialStatus string `json:"financial_status"`
}

// Orders is one page of the orders.json endpoint.
type Orders struct {
	Orders []Order `json:"orders"`
}

const missingEmail = "N/A"

// Row returns the order as a spreadsheet row:
// id, created_at, email, total_price, currency, financial_status.
func (o Order) Row() []interface{} {
	email := o.Email
	if email == "" {
		email = missingEmail
	}
	return []interface{}{o.Id, o.CreatedAt, email, o.TotalPrice, o.Currency, o.FinancialStatus}
}

func Rows(orders []Order) [][]interface{} {
	rows := make([][]interface{}, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, o.Row())
	}
	return rows
}
