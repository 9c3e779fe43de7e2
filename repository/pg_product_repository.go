package repository

import (
	"context"
	"database/sql"
	"fmt"
	"product-insights-api/logger"
	"product-insights-api/model"
)

// PGProductRepository reads the dataset from the product_transactions table.
type PGProductRepository struct {
	DB *sql.DB
}

func NewPGProductRepository(db *sql.DB) *PGProductRepository {
	return &PGProductRepository{DB: db}
}

// FetchAll returns every stored transaction ordered by id.
func (r *PGProductRepository) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	log := logger.Log.WithField("table", "product_transactions")
	log.Debug("Executing query to fetch all product transactions")

	query := `
		SELECT id, title, price, description, category, image, sold, date_of_sale, date_of_sale_raw
		FROM product_transactions
		ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for product transactions")
		return nil, fmt.Errorf("query product transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var (
			t          model.Transaction
			dateOfSale sql.NullTime
			raw        string
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Price, &t.Description, &t.Category, &t.Image, &t.Sold, &dateOfSale, &raw); err != nil {
			log.WithError(err).Error("Failed to scan product transaction row")
			return nil, fmt.Errorf("scan product transaction: %w", err)
		}
		t.DateOfSale = saleTimeFromRow(dateOfSale, raw)
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product transactions: %w", err)
	}
	return txs, nil
}

// saleTimeFromRow rebuilds the date from its stored text, so the month is read
// in the offset the source wrote rather than the session time zone. Rows
// written before the text column existed fall back to the timestamp.
func saleTimeFromRow(ts sql.NullTime, raw string) model.SaleTime {
	if raw != "" {
		return model.ParseSaleTime(raw)
	}
	if ts.Valid {
		return model.NewSaleTime(ts.Time)
	}
	return model.SaleTime{}
}

// ImportTransactions replaces the table contents with txs in one database transaction
// and returns the number stored. A dateOfSale that cannot be parsed is stored
// as text with a NULL timestamp.
func (r *PGProductRepository) ImportTransactions(ctx context.Context, txs []model.Transaction) (int, error) {
	log := logger.Log.WithField("records", len(txs))
	log.Info("Importing product transactions")

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_transactions`); err != nil {
		return 0, fmt.Errorf("could not clear product transactions: %w", err)
	}

	query := `INSERT INTO product_transactions (id, title, price, description, category, image, sold, date_of_sale, date_of_sale_raw)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	stored := 0
	for _, t := range txs {
		dateOfSale := sql.NullTime{Time: t.DateOfSale.Time, Valid: t.DateOfSale.Valid}
		if !dateOfSale.Valid {
			log.WithField("id", t.ID).Warn("Storing transaction with unparseable dateOfSale as text only")
		}
		if _, err := tx.ExecContext(ctx, query, t.ID, t.Title, t.Price, t.Description, t.Category, t.Image, t.Sold, dateOfSale, t.DateOfSale.Raw); err != nil {
			return 0, fmt.Errorf("could not insert product transaction %d: %w", t.ID, err)
		}
		stored++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.WithField("stored", stored).Info("Product transactions imported successfully")
	return stored, nil
}
