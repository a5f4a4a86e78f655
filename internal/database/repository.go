package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-catch-automation/internal/engine"
)

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// ---------------- LISTING OPERATIONS ----------------

// SaveListing inserts a collected posting or refreshes an existing one (based on url)
func (r *Repository) SaveListing(ctx context.Context, category string, rec engine.ListingRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}

	query := `
		INSERT INTO listings (url, category, title, company, page, payload, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (url)
		DO UPDATE SET category = EXCLUDED.category, title = EXCLUDED.title,
		              company = EXCLUDED.company, page = EXCLUDED.page,
		              payload = EXCLUDED.payload, collected_at = now()`

	if _, err := r.db.Exec(ctx, query, rec.URL, category, rec.Title, rec.Company, rec.Page, payload); err != nil {
		return fmt.Errorf("failed to save listing: %w", err)
	}
	return nil
}

// SaveListings stores a whole collection run; individual failures abort
// so the caller can report how far it got
func (r *Repository) SaveListings(ctx context.Context, category string, recs []engine.ListingRecord) (int, error) {
	for i, rec := range recs {
		if rec.URL == "" {
			continue
		}
		if err := r.SaveListing(ctx, category, rec); err != nil {
			return i, err
		}
	}
	return len(recs), nil
}

// ---------------- COMPANY OPERATIONS ----------------

// SaveCompany upserts a company profile snapshot (based on name)
func (r *Repository) SaveCompany(ctx context.Context, rec engine.CompanyRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal company: %w", err)
	}

	query := `
		INSERT INTO companies (name, industry, size_class, payload, collected_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (name)
		DO UPDATE SET industry = EXCLUDED.industry, size_class = EXCLUDED.size_class,
		              payload = EXCLUDED.payload, collected_at = now()`

	if _, err := r.db.Exec(ctx, query, rec.Name, rec.Industry, rec.SizeClass, payload); err != nil {
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}
