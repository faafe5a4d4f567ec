package repository

import (
	"context"
	"errors"
	"time"

	"curtail/internal/config"
	"curtail/internal/model"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrDuplicateCode is returned when an insert hits the unique index on
// links.code. The index is what makes create's uniqueness check atomic.
var ErrDuplicateCode = errors.New("short code already exists")

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Link{}, &model.ClickEvent{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// InsertLink inserts a link, relying on the unique index for the
// insert-if-absent contract. Returns ErrDuplicateCode when the code is
// already taken.
func (r *MySQLRepository) InsertLink(ctx context.Context, link *model.Link) error {
	err := r.db.WithContext(ctx).Create(link).Error
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicateCode
	}
	return err
}

// GetLinkByCode retrieves a link by its short code
func (r *MySQLRepository) GetLinkByCode(ctx context.Context, code string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// CheckExistsByCode checks if a short code exists
func (r *MySQLRepository) CheckExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// DeleteLink removes a link by code. Click events for the code are kept
// for audit. Returns the number of rows removed.
func (r *MySQLRepository) DeleteLink(ctx context.Context, code string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&model.Link{})
	return result.RowsAffected, result.Error
}

// ListLinksByOwner retrieves all links created by an owner, newest first
func (r *MySQLRepository) ListLinksByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// SaveClickEvent appends a click event to the log
func (r *MySQLRepository) SaveClickEvent(ctx context.Context, ev *model.ClickEvent) error {
	return r.db.WithContext(ctx).Create(ev).Error
}

// GetClickEvents retrieves click events for a short code, newest first.
// A limit of 0 returns the full log.
func (r *MySQLRepository) GetClickEvents(ctx context.Context, code string, limit int) ([]model.ClickEvent, error) {
	var events []model.ClickEvent
	query := r.db.WithContext(ctx).
		Where("link_code = ?", code).
		Order("timestamp DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&events).Error
	return events, err
}

// CountClickEvents returns the authoritative click count for a code
func (r *MySQLRepository) CountClickEvents(ctx context.Context, code string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ClickEvent{}).
		Where("link_code = ?", code).
		Count(&count).Error
	return count, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *gomysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
