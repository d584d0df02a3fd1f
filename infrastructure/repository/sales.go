package repository

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/social-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/social-insights-api/internal/domain"
)

const (
	salesTable    = "sales"
	productsTable = "products"
)

type SalesRepository interface {
	ListSales(ctx context.Context, r domain.DateRange) ([]domain.RawRecord, error)
	TotalRevenue(ctx context.Context, r domain.DateRange) (float64, error)
	TopProducts(ctx context.Context, r domain.DateRange, limit int) ([]domain.TopProduct, error)
	DailyRevenue(ctx context.Context, r domain.DateRange) ([]domain.DailyRevenue, error)
	SaveBatch(ctx context.Context, batch domain.SalesBatch) (map[string]int, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

func withSalesRange(q squirrel.SelectBuilder, r domain.DateRange) squirrel.SelectBuilder {
	if r.Start != nil {
		q = q.Where(squirrel.GtOrEq{"s.date": r.Start.Format(domain.DateLayout)})
	}
	if r.End != nil {
		q = q.Where(squirrel.LtOrEq{"s.date": r.End.Format(domain.DateLayout)})
	}
	return q
}

func (r *salesRepository) ListSales(ctx context.Context, dr domain.DateRange) ([]domain.RawRecord, error) {
	query := squirrel.
		Select("s.sale_id", "s.date", "s.product_id", "COALESCE(p.product_name, '')", "s.quantity_sold", "s.price", "s.revenue").
		From(salesTable + " s").
		LeftJoin(productsTable + " p ON p.product_id = s.product_id")

	query = withSalesRange(query, dr).
		OrderBy("s.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sales query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RawRecord, 0)
	for rows.Next() {
		var (
			saleID, productID, productName string
			date                           time.Time
			quantity, price, revenue       float64
		)
		if err := rows.Scan(&saleID, &date, &productID, &productName, &quantity, &price, &revenue); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		records = append(records, domain.RawRecord{
			"sale_id":       saleID,
			"date":          date.Format(domain.DateLayout),
			"product_id":    productID,
			"product_name":  productName,
			"quantity_sold": quantity,
			"price":         price,
			"revenue":       revenue,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}

	return records, nil
}

func (r *salesRepository) TotalRevenue(ctx context.Context, dr domain.DateRange) (float64, error) {
	query := withSalesRange(
		squirrel.Select("COALESCE(SUM(s.revenue), 0)").From(salesTable+" s"),
		dr,
	).PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build revenue query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("query total revenue: %w", err)
	}

	return total, nil
}

func (r *salesRepository) TopProducts(ctx context.Context, dr domain.DateRange, limit int) ([]domain.TopProduct, error) {
	query := squirrel.
		Select("p.product_name", "SUM(s.revenue) AS total").
		From(salesTable + " s").
		Join(productsTable + " p ON p.product_id = s.product_id")

	sqlQuery, args, err := withSalesRange(query, dr).
		GroupBy("p.product_name").
		OrderBy("total DESC", "p.product_name ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top products query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query top products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.TopProduct, 0, limit)
	for rows.Next() {
		var p domain.TopProduct
		if err := rows.Scan(&p.ProductName, &p.Sales); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top products: %w", err)
	}

	return products, nil
}

func (r *salesRepository) DailyRevenue(ctx context.Context, dr domain.DateRange) ([]domain.DailyRevenue, error) {
	query := withSalesRange(
		squirrel.Select("s.date", "SUM(s.revenue)").From(salesTable+" s"),
		dr,
	).
		GroupBy("s.date").
		OrderBy("s.date ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily revenue query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query daily revenue: %w", err)
	}
	defer rows.Close()

	days := make([]domain.DailyRevenue, 0)
	for rows.Next() {
		var d domain.DailyRevenue
		if err := rows.Scan(&d.Date, &d.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily revenue: %w", err)
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily revenue: %w", err)
	}

	return days, nil
}

// SaveBatch upserts the products and inserts the sales of one upload in a
// single transaction. It returns the number of rows written per table.
func (r *salesRepository) SaveBatch(ctx context.Context, batch domain.SalesBatch) (map[string]int, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(batch.Products); start += insertChunkSize {
			end := min(start+insertChunkSize, len(batch.Products))

			query := squirrel.
				Insert(productsTable).
				Columns("product_id", "product_name").
				Suffix("ON CONFLICT (product_id) DO UPDATE SET product_name = EXCLUDED.product_name")
			for _, p := range batch.Products[start:end] {
				query = query.Values(p.ProductID, p.ProductName)
			}

			if err := execInsert(ctx, tx, query); err != nil {
				return fmt.Errorf("upsert products: %w", err)
			}
		}

		for start := 0; start < len(batch.Sales); start += insertChunkSize {
			end := min(start+insertChunkSize, len(batch.Sales))

			query := squirrel.
				Insert(salesTable).
				Columns("sale_id", "product_id", "date", "quantity_sold", "price", "revenue")
			for _, s := range batch.Sales[start:end] {
				query = query.Values(s.SaleID, s.ProductID, s.Date.Format(domain.DateLayout), s.QuantitySold, s.Price, s.Revenue)
			}

			if err := execInsert(ctx, tx, query); err != nil {
				return fmt.Errorf("insert sales: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return map[string]int{
		productsTable: len(batch.Products),
		salesTable:    len(batch.Sales),
	}, nil
}
