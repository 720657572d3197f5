package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// LowStockReportJob periodically scans the product ledger and logs every
// product whose available quantity dropped to the configured threshold or
// below. Runs once a minute; the scan is read-only and never mutates stock.
type LowStockReportJob struct {
	db        *gorm.DB
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// lowStockRow is the raw scan target for the report query.
type lowStockRow struct {
	Name     string
	Quantity int
}

// NewLowStockReportJob creates a new low stock reporting job.
// Products with quantity <= threshold are reported.
func NewLowStockReportJob(db *gorm.DB, threshold int, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		db:        db,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock report job to run every minute.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		var rows []lowStockRow
		err := j.db.WithContext(ctx).Raw(`
			SELECT name, quantity
			FROM products
			WHERE quantity <= ?
			ORDER BY quantity, name
		`, j.threshold).Scan(&rows).Error
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
			return
		}

		for _, row := range rows {
			j.logger.WarnContext(ctx, "Product is low on stock",
				"product", row.Name, "quantity", row.Quantity, "threshold", j.threshold)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running every minute)")
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
