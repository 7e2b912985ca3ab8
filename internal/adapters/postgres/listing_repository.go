package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"catalog-service/internal/constants"
	"catalog-service/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingRepositoryAdapter implements ListingRepositoryPort on PostgreSQL.
type ListingRepositoryAdapter struct {
	pool *pgxpool.Pool
}

func NewListingRepositoryAdapter(pool *pgxpool.Pool) (*ListingRepositoryAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingRepositoryAdapter{pool: pool}, nil
}

const listingColumns = `
	id, external_id, title, description, operation, property_type,
	currency, price_display, price_numeric, location,
	bedrooms, bathrooms, parking_spaces,
	lot_size_m2, construction_size_m2,
	gallery, featured_image,
	latitude, longitude, geohash,
	status, published_at, created_at, updated_at`

func scanListing(row pgx.Row) (*domain.ListingRecord, error) {
	var r domain.ListingRecord
	err := row.Scan(
		&r.ID, &r.ExternalID, &r.Title, &r.Description, &r.Operation, &r.PropertyType,
		&r.Currency, &r.PriceDisplay, &r.PriceNumeric, &r.Location,
		&r.Bedrooms, &r.Bathrooms, &r.ParkingSpaces,
		&r.LotSizeM2, &r.ConstructionSizeM2,
		&r.Gallery, &r.FeaturedImage,
		&r.Latitude, &r.Longitude, &r.Geohash,
		&r.Status, &r.PublishedAt, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FindByExternalID returns (nil, nil) when the catalog has no record with
// the given external id.
func (a *ListingRepositoryAdapter) FindByExternalID(ctx context.Context, externalID string) (*domain.ListingRecord, error) {
	sql := fmt.Sprintf("SELECT %s FROM listings WHERE external_id = $1", listingColumns)

	record, err := scanListing(a.pool.QueryRow(ctx, sql, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find listing %s: %w", externalID, err)
	}
	return record, nil
}

// Upsert writes the record keyed by external id. The xmax system column
// is 0 for freshly inserted rows, which is how created is derived.
func (a *ListingRepositoryAdapter) Upsert(ctx context.Context, record *domain.ListingRecord) (bool, error) {
	sql := `
		INSERT INTO listings (
			id, external_id, title, description, operation, property_type,
			currency, price_display, price_numeric, location,
			bedrooms, bathrooms, parking_spaces,
			lot_size_m2, construction_size_m2,
			gallery, featured_image,
			latitude, longitude, geohash,
			status, published_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24
		)
		ON CONFLICT (external_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			operation = EXCLUDED.operation,
			property_type = EXCLUDED.property_type,
			currency = EXCLUDED.currency,
			price_display = EXCLUDED.price_display,
			price_numeric = EXCLUDED.price_numeric,
			location = EXCLUDED.location,
			bedrooms = EXCLUDED.bedrooms,
			bathrooms = EXCLUDED.bathrooms,
			parking_spaces = EXCLUDED.parking_spaces,
			lot_size_m2 = EXCLUDED.lot_size_m2,
			construction_size_m2 = EXCLUDED.construction_size_m2,
			gallery = EXCLUDED.gallery,
			featured_image = EXCLUDED.featured_image,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			geohash = EXCLUDED.geohash,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0);
	`

	var created bool
	err := a.pool.QueryRow(ctx, sql,
		record.ID, record.ExternalID, record.Title, record.Description, record.Operation, record.PropertyType,
		record.Currency, record.PriceDisplay, record.PriceNumeric, record.Location,
		record.Bedrooms, record.Bathrooms, record.ParkingSpaces,
		record.LotSizeM2, record.ConstructionSizeM2,
		record.Gallery, record.FeaturedImage,
		record.Latitude, record.Longitude, record.Geohash,
		record.Status, record.PublishedAt, record.CreatedAt, record.UpdatedAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert listing %s: %w", record.ExternalID, err)
	}
	return created, nil
}

// Query answers a filtered catalog query, newest first with the internal id
// breaking publication-time ties.
func (a *ListingRepositoryAdapter) Query(ctx context.Context, criteria domain.FilterCriteria) (*domain.PaginatedResult, error) {
	whereClause, args := applyFilters(criteria)

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM listings %s", whereClause)
	var total int
	if err := a.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * constants.ResultsPageSize

	sql := fmt.Sprintf(`
		SELECT %s FROM listings
		%s
		ORDER BY published_at DESC, id DESC
		LIMIT %d OFFSET %d`,
		listingColumns, whereClause, constants.ResultsPageSize, offset)

	rows, err := a.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ListingRecord, 0, constants.ResultsPageSize)
	for rows.Next() {
		record, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		items = append(items, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading listing rows: %w", err)
	}

	return &domain.PaginatedResult{
		Items:       items,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(constants.ResultsPageSize))),
		TotalCount:  total,
	}, nil
}

// MapPins projects every published record that carries coordinates.
func (a *ListingRepositoryAdapter) MapPins(ctx context.Context) ([]domain.MapPin, error) {
	sql := `
		SELECT external_id, title, price_numeric, currency, latitude, longitude, geohash
		FROM listings
		WHERE status = 'published' AND (latitude <> 0 OR longitude <> 0)
		ORDER BY published_at DESC, id DESC`

	rows, err := a.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query map pins: %w", err)
	}
	defer rows.Close()

	var pins []domain.MapPin
	for rows.Next() {
		var pin domain.MapPin
		if err := rows.Scan(&pin.ExternalID, &pin.Title, &pin.PriceNumeric, &pin.Currency, &pin.Latitude, &pin.Longitude, &pin.Geohash); err != nil {
			return nil, fmt.Errorf("failed to scan map pin: %w", err)
		}
		pins = append(pins, pin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading map pin rows: %w", err)
	}

	return pins, nil
}
