package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kritsada/alumnihub/internal/app/models"
	"github.com/kritsada/alumnihub/internal/app/models/dto"
	"github.com/kritsada/alumnihub/internal/pkg/logger"
)

// Alumni error types
var (
	ErrAlumniNotFound   = errors.New("alumni record not found")
	ErrNationalIDExists = errors.New("national ID already registered")
)

var alumniColumnList = []string{
	"id", "first_name", "last_name", "national_id", "address", "phone", "email",
	"department", "graduation_year", "position", "status", "delivery_option",
	"shipping_status", "tracking_number", "shipped_date", "created_at", "updated_at",
}

var alumniColumns = strings.Join(alumniColumnList, ", ")

var shippingHistoryColumnList = []string{
	"id", "alumni_id", "status", "tracking_number", "notes", "updated_at",
}

var shippingHistoryColumns = strings.Join(shippingHistoryColumnList, ", ")

// AlumniFilter narrows alumni list queries.
type AlumniFilter struct {
	Search         string
	Status         models.Status
	ShippingStatus models.ShippingStatus
	Department     string
	GraduationYear int
	// ShippableOnly restricts to approved records with mail delivery.
	ShippableOnly bool
	DateFrom      *time.Time
	DateTo        *time.Time
}

// AlumniRepository handles database operations for alumni records
type AlumniRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAlumniRepository creates a new alumni repository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new alumni record
func (r *AlumniRepository) Create(ctx context.Context, alumni *models.Alumni) error {
	query := `
		INSERT INTO alumni (first_name, last_name, national_id, address, phone, email,
			department, graduation_year, position, status, delivery_option, shipping_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		alumni.FirstName, alumni.LastName, alumni.NationalID, alumni.Address,
		alumni.Phone, alumni.Email, alumni.Department, alumni.GraduationYear,
		alumni.Position, alumni.Status, alumni.DeliveryOption, alumni.ShippingStatus,
	).Scan(&alumni.ID, &alumni.CreatedAt, &alumni.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrNationalIDExists
		}
		return fmt.Errorf("error creating alumni record: %w", err)
	}

	return nil
}

func scanAlumni(row pgx.Row) (*models.Alumni, error) {
	var a models.Alumni
	err := row.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.NationalID, &a.Address, &a.Phone,
		&a.Email, &a.Department, &a.GraduationYear, &a.Position, &a.Status,
		&a.DeliveryOption, &a.ShippingStatus, &a.TrackingNumber, &a.ShippedDate,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID retrieves an alumni record by ID
func (r *AlumniRepository) GetByID(ctx context.Context, id int64) (*models.Alumni, error) {
	query := fmt.Sprintf(`SELECT %s FROM alumni WHERE id = $1`, alumniColumns)

	alumni, err := scanAlumni(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni record: %w", err)
	}
	return alumni, nil
}

// GetByNationalID retrieves an alumni record by national ID
func (r *AlumniRepository) GetByNationalID(ctx context.Context, nationalID string) (*models.Alumni, error) {
	query := fmt.Sprintf(`SELECT %s FROM alumni WHERE national_id = $1`, alumniColumns)

	alumni, err := scanAlumni(r.db.QueryRow(ctx, query, nationalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error retrieving alumni record: %w", err)
	}
	return alumni, nil
}

// GetByIDs retrieves records for the given IDs, preserving the input order.
func (r *AlumniRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Alumni, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM alumni WHERE id = ANY($1)`, alumniColumns)
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumni records: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]models.Alumni, len(ids))
	for rows.Next() {
		alumni, err := scanAlumni(rows)
		if err != nil {
			return nil, err
		}
		byID[alumni.ID] = *alumni
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Selection order is meaningful for label sheets
	result := make([]models.Alumni, 0, len(ids))
	for _, id := range ids {
		if alumni, ok := byID[id]; ok {
			result = append(result, alumni)
		}
	}
	return result, nil
}

// applyFilter appends the filter's conditions for both select and count queries.
func applyFilter(filter AlumniFilter) squirrel.And {
	where := squirrel.And{}

	if filter.ShippableOnly {
		where = append(where,
			squirrel.Eq{"status": models.StatusApproved},
			squirrel.Eq{"delivery_option": models.DeliveryMail},
		)
	}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"status": filter.Status})
	}
	if filter.ShippingStatus != "" {
		where = append(where, squirrel.Eq{"shipping_status": filter.ShippingStatus})
	}
	if filter.Department != "" {
		where = append(where, squirrel.Eq{"department": filter.Department})
	}
	if filter.GraduationYear > 0 {
		where = append(where, squirrel.Eq{"graduation_year": filter.GraduationYear})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.Expr("first_name || ' ' || last_name ILIKE ?", pattern),
			squirrel.ILike{"national_id": pattern},
			squirrel.ILike{"phone": pattern},
		})
	}
	if filter.DateFrom != nil {
		where = append(where, squirrel.GtOrEq{"updated_at": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		where = append(where, squirrel.Lt{"updated_at": filter.DateTo.AddDate(0, 0, 1)})
	}

	return where
}

// List retrieves a filtered page of alumni records plus the total match count.
func (r *AlumniRepository) List(ctx context.Context, filter AlumniFilter, offset uint64, limit int) ([]models.Alumni, int64, error) {
	where := applyFilter(filter)

	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("alumni").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count alumni query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count alumni query")
		return nil, 0, fmt.Errorf("failed to count alumni records: %w", err)
	}

	if totalItems == 0 {
		return []models.Alumni{}, 0, nil
	}

	listSql, listArgs, err := r.sb.Select(alumniColumnList...).
		From("alumni").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list alumni query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alumni records: %w", err)
	}
	defer rows.Close()

	result := make([]models.Alumni, 0, limit)
	for rows.Next() {
		alumni, err := scanAlumni(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *alumni)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return result, totalItems, nil
}

// Update updates an alumni record's profile fields
func (r *AlumniRepository) Update(ctx context.Context, alumni *models.Alumni) error {
	query := `
		UPDATE alumni
		SET first_name = $1, last_name = $2, address = $3, phone = $4, email = $5,
			department = $6, graduation_year = $7, delivery_option = $8, updated_at = NOW()
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		alumni.FirstName, alumni.LastName, alumni.Address, alumni.Phone, alumni.Email,
		alumni.Department, alumni.GraduationYear, alumni.DeliveryOption, alumni.ID)
	if err != nil {
		return fmt.Errorf("error updating alumni record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAlumniNotFound
	}
	return nil
}

// UpdateStatus changes a record's approval status
func (r *AlumniRepository) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE alumni SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating alumni status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAlumniNotFound
	}
	return nil
}

// UpdatePosition changes a member's association position
func (r *AlumniRepository) UpdatePosition(ctx context.Context, id int64, position string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE alumni SET position = $1, updated_at = NOW() WHERE id = $2`, position, id)
	if err != nil {
		return fmt.Errorf("error updating alumni position: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAlumniNotFound
	}
	return nil
}

// Delete removes an alumni record and its shipping history
func (r *AlumniRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM alumni WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting alumni record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrAlumniNotFound
	}
	return nil
}

// UpdateShipping sets the shipping state of one record and appends a history
// entry in the same transaction. Returns the updated record.
func (r *AlumniRepository) UpdateShipping(ctx context.Context, id int64, status models.ShippingStatus, trackingNumber, notes *string) (*models.Alumni, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin shipping update transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	query := fmt.Sprintf(`
		UPDATE alumni
		SET shipping_status = $1,
			tracking_number = $2,
			shipped_date = CASE WHEN $1 <> 'awaiting_shipment' AND shipped_date IS NULL THEN NOW() ELSE shipped_date END,
			updated_at = NOW()
		WHERE id = $3
		RETURNING %s`, alumniColumns)

	alumni, err := scanAlumni(tx.QueryRow(ctx, query, status, trackingNumber, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAlumniNotFound
		}
		return nil, fmt.Errorf("error updating shipping state: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO shipping_history (alumni_id, status, tracking_number, notes)
		VALUES ($1, $2, $3, $4)`,
		id, status, trackingNumber, notes)
	if err != nil {
		return nil, fmt.Errorf("error appending shipping history: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit shipping update: %w", err)
	}
	return alumni, nil
}

// BulkUpdateShipping applies one shipping status to many records in a single
// transaction and appends a history entry per updated record. Records that are
// not shipping-eligible are skipped. Returns the number of updated rows.
func (r *AlumniRepository) BulkUpdateShipping(ctx context.Context, ids []int64, status models.ShippingStatus, notes *string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin bulk shipping transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	rows, err := tx.Query(ctx, `
		UPDATE alumni
		SET shipping_status = $1,
			shipped_date = CASE WHEN shipped_date IS NULL THEN NOW() ELSE shipped_date END,
			updated_at = NOW()
		WHERE id = ANY($2)
		  AND status = 'approved'
		  AND delivery_option = 'mail'
		RETURNING id, tracking_number`,
		status, ids)
	if err != nil {
		return 0, fmt.Errorf("error bulk updating shipping state: %w", err)
	}

	type updated struct {
		id       int64
		tracking *string
	}
	var updatedRows []updated
	for rows.Next() {
		var u updated
		if err := rows.Scan(&u.id, &u.tracking); err != nil {
			rows.Close()
			return 0, err
		}
		updatedRows = append(updatedRows, u)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, u := range updatedRows {
		_, err = tx.Exec(ctx, `
			INSERT INTO shipping_history (alumni_id, status, tracking_number, notes)
			VALUES ($1, $2, $3, $4)`,
			u.id, status, u.tracking, notes)
		if err != nil {
			return 0, fmt.Errorf("error appending shipping history: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit bulk shipping update: %w", err)
	}
	return len(updatedRows), nil
}

// GetShippingHistory retrieves the append-only history of one record, newest first.
func (r *AlumniRepository) GetShippingHistory(ctx context.Context, alumniID int64) ([]models.ShippingHistoryEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM shipping_history
		WHERE alumni_id = $1
		ORDER BY updated_at DESC, id DESC`, shippingHistoryColumns)

	rows, err := r.db.Query(ctx, query, alumniID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving shipping history: %w", err)
	}
	defer rows.Close()

	var entries []models.ShippingHistoryEntry
	for rows.Next() {
		var e models.ShippingHistoryEntry
		if err := rows.Scan(&e.ID, &e.AlumniID, &e.Status, &e.TrackingNumber, &e.Notes, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Statistics aggregates registry counts for the admin dashboard.
func (r *AlumniRepository) Statistics(ctx context.Context) (*dto.AlumniStatistics, error) {
	stats := &dto.AlumniStatistics{
		ByStatus:         make(map[string]int64),
		ByDeliveryOption: make(map[string]int64),
		ByGraduationYear: make(map[string]int64),
	}

	rows, err := r.db.Query(ctx, `
		SELECT status, delivery_option, graduation_year::text, COUNT(*)
		FROM alumni
		GROUP BY status, delivery_option, graduation_year`)
	if err != nil {
		return nil, fmt.Errorf("error aggregating alumni statistics: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status, delivery, year string
		var count int64
		if err := rows.Scan(&status, &delivery, &year, &count); err != nil {
			return nil, err
		}
		stats.Total += count
		stats.ByStatus[status] += count
		stats.ByDeliveryOption[delivery] += count
		stats.ByGraduationYear[year] += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// ShippingStatistics aggregates shipping-eligible records by shipping status.
func (r *AlumniRepository) ShippingStatistics(ctx context.Context) (*dto.ShippingStatistics, error) {
	var stats dto.ShippingStatistics
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE shipping_status = 'awaiting_shipment'),
			COUNT(*) FILTER (WHERE shipping_status = 'in_transit'),
			COUNT(*) FILTER (WHERE shipping_status = 'delivered'),
			COUNT(*) FILTER (WHERE tracking_number IS NOT NULL AND tracking_number <> '')
		FROM alumni
		WHERE status = 'approved' AND delivery_option = 'mail'`).
		Scan(&stats.Total, &stats.AwaitingShipment, &stats.InTransit, &stats.Delivered, &stats.WithTracking)
	if err != nil {
		return nil, fmt.Errorf("error aggregating shipping statistics: %w", err)
	}
	return &stats, nil
}

// CountPending counts records awaiting approval.
func (r *AlumniRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM alumni WHERE status = $1`, models.StatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting pending registrations: %w", err)
	}
	return count, nil
}
