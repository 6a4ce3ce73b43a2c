package internal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/tavsec/gin-healthcheck/checks"

	"car-rentals-api/internal/models"
)

//go:embed sql/insert_search.sql
var insertSearchSQL string

//go:embed sql/recent_searches.sql
var recentSearchesSQL string

//go:embed sql/prune_searches.sql
var pruneSearchesSQL string

// SearchRecord is one row of search history: what was asked, which source
// answered, and the cheapest daily rate found.
type SearchRecord struct {
	ID               int64     `json:"id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	PickupDate       string    `json:"pickup_date"`
	ReturnDate       string    `json:"return_date"`
	RoundTrip        bool      `json:"round_trip"`
	CarSize          string    `json:"car_size"`
	Source           string    `json:"source"`
	NumOptions       int       `json:"num_options"`
	LowestDailyPrice int       `json:"lowest_daily_price"`
	QueryURL         string    `json:"query_url"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewSearchRecord captures the history row for one completed acquisition.
func NewSearchRecord(trip models.Trip, result *models.AcquisitionResult) SearchRecord {
	lowest := 0
	for _, option := range result.Options {
		if lowest == 0 || option.PricePerDay < lowest {
			lowest = option.PricePerDay
		}
	}
	return SearchRecord{
		Origin:           trip.Origin.String(),
		Destination:      trip.Destination.String(),
		PickupDate:       trip.PickupDate.Format("2006-01-02"),
		ReturnDate:       trip.ReturnDate.Format("2006-01-02"),
		RoundTrip:        trip.RoundTrip,
		CarSize:          string(trip.CarSize),
		Source:           string(result.Source),
		NumOptions:       len(result.Options),
		LowestDailyPrice: lowest,
		QueryURL:         result.URL,
		CreatedAt:        time.Now().UTC(),
	}
}

type SearchHistoryRepository interface {
	Insert(record SearchRecord) error
	Recent(limit int) ([]SearchRecord, error)
	PruneOlderThan(cutoff time.Time) (int64, error)
	Check() checks.Check
	Close() error
}

type sqliteRepository struct {
	db *sql.DB
}

func NewSearchHistoryRepository(db *sql.DB) SearchHistoryRepository {
	return &sqliteRepository{
		db: db,
	}
}

func (repo *sqliteRepository) Insert(record SearchRecord) error {
	_, err := repo.db.Exec(insertSearchSQL,
		record.Origin,
		record.Destination,
		record.PickupDate,
		record.ReturnDate,
		record.RoundTrip,
		record.CarSize,
		record.Source,
		record.NumOptions,
		record.LowestDailyPrice,
		record.QueryURL,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert search record: %w", err)
	}
	return nil
}

func (repo *sqliteRepository) Recent(limit int) ([]SearchRecord, error) {
	rows, err := repo.db.Query(recentSearchesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute history query: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var records []SearchRecord
	for rows.Next() {
		var record SearchRecord
		if err := rows.Scan(
			&record.ID, &record.Origin, &record.Destination,
			&record.PickupDate, &record.ReturnDate, &record.RoundTrip,
			&record.CarSize, &record.Source, &record.NumOptions,
			&record.LowestDailyPrice, &record.QueryURL, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return records, nil
}

func (repo *sqliteRepository) PruneOlderThan(cutoff time.Time) (int64, error) {
	result, err := repo.db.Exec(pruneSearchesSQL, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune search history: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned rows: %w", err)
	}
	return deleted, nil
}

func (repo *sqliteRepository) Check() checks.Check {
	return checks.SqlCheck{Sql: repo.db}
}

func (repo *sqliteRepository) Close() error {
	return repo.db.Close()
}
