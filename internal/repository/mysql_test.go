package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	gomysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"curtail/internal/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestMySQLRepository_InsertLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("insert link successfully", func(t *testing.T) {
		link := &model.Link{
			Code:           "aB3xY9",
			DestinationURL: "https://example.com",
			OwnerID:        "user-1",
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.InsertLink(ctx, link)
		assert.NoError(t, err)
	})

	t.Run("duplicate code maps to ErrDuplicateCode", func(t *testing.T) {
		link := &model.Link{
			Code:           "aB3xY9",
			DestinationURL: "https://example.com",
			OwnerID:        "user-1",
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnError(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry 'aB3xY9' for key 'idx_links_code'"})
		mock.ExpectRollback()

		err := repo.InsertLink(ctx, link)
		assert.ErrorIs(t, err, ErrDuplicateCode)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		link := &model.Link{
			Code:           "aB3xY9",
			DestinationURL: "https://example.com",
			OwnerID:        "user-1",
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `links`")).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.InsertLink(ctx, link)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrDuplicateCode)
	})
}

func TestMySQLRepository_GetLinkByCode(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("get existing link", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "code", "destination_url", "owner_id", "is_custom_alias", "qr_code_ref", "created_at"}).
			AddRow(1, "aB3xY9", "https://example.com", "user-1", false, "ref-1", time.Now())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE code = ? ORDER BY `links`.`id` LIMIT ?")).
			WithArgs("aB3xY9", 1).
			WillReturnRows(rows)

		link, err := repo.GetLinkByCode(ctx, "aB3xY9")
		assert.NoError(t, err)
		assert.NotNil(t, link)
		assert.Equal(t, "aB3xY9", link.Code)
		assert.Equal(t, "https://example.com", link.DestinationURL)
	})

	t.Run("get non-existent link", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE code = ? ORDER BY `links`.`id` LIMIT ?")).
			WithArgs("never1", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		link, err := repo.GetLinkByCode(ctx, "never1")
		assert.Error(t, err)
		assert.Nil(t, link)
		assert.Equal(t, gorm.ErrRecordNotFound, err)
	})
}

func TestMySQLRepository_CheckExistsByCode(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("code exists", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"count"}).AddRow(1)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `links` WHERE code = ?")).
			WithArgs("aB3xY9").
			WillReturnRows(rows)

		exists, err := repo.CheckExistsByCode(ctx, "aB3xY9")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("code does not exist", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"count"}).AddRow(0)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `links` WHERE code = ?")).
			WithArgs("never1").
			WillReturnRows(rows)

		exists, err := repo.CheckExistsByCode(ctx, "never1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMySQLRepository_DeleteLink(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("delete existing link", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `links` WHERE code = ?")).
			WithArgs("aB3xY9").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rows, err := repo.DeleteLink(ctx, "aB3xY9")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("delete non-existent link affects no rows", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `links` WHERE code = ?")).
			WithArgs("never1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		rows, err := repo.DeleteLink(ctx, "never1")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}

func TestMySQLRepository_ListLinksByOwner(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("owner has links", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "code", "destination_url", "owner_id", "is_custom_alias", "qr_code_ref", "created_at"}).
			AddRow(2, "newer1", "https://example.com/b", "user-1", false, "ref-2", now).
			AddRow(1, "older1", "https://example.com/a", "user-1", true, "ref-1", now.Add(-time.Hour))

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE owner_id = ? ORDER BY created_at DESC")).
			WithArgs("user-1").
			WillReturnRows(rows)

		links, err := repo.ListLinksByOwner(ctx, "user-1")
		assert.NoError(t, err)
		assert.Len(t, links, 2)
		assert.Equal(t, "newer1", links[0].Code)
	})

	t.Run("owner has no links", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "code", "destination_url", "owner_id", "is_custom_alias", "qr_code_ref", "created_at"})

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `links` WHERE owner_id = ? ORDER BY created_at DESC")).
			WithArgs("user-2").
			WillReturnRows(rows)

		links, err := repo.ListLinksByOwner(ctx, "user-2")
		assert.NoError(t, err)
		assert.Empty(t, links)
	})
}

func TestMySQLRepository_SaveClickEvent(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("save click event successfully", func(t *testing.T) {
		ev := &model.ClickEvent{
			LinkCode:   "aB3xY9",
			Timestamp:  time.Now(),
			DeviceType: "Desktop",
			Browser:    "Chrome",
			OS:         "Linux",
			ClientIP:   "203.0.113.9",
		}

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `click_events`")).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.SaveClickEvent(ctx, ev)
		assert.NoError(t, err)
	})
}

func TestMySQLRepository_GetClickEvents(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("get click events with limit", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "link_code", "timestamp", "device_type", "browser", "os", "city", "country", "referer", "client_ip"}).
			AddRow(2, "aB3xY9", now, "Desktop", "Chrome", "Linux", "", "Germany", "", "203.0.113.9").
			AddRow(1, "aB3xY9", now.Add(-time.Hour), "Mobile", "Safari", "iOS", "Paris", "France", "https://example.org", "203.0.113.10")

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `click_events` WHERE link_code = ? ORDER BY timestamp DESC LIMIT ?")).
			WithArgs("aB3xY9", 10).
			WillReturnRows(rows)

		events, err := repo.GetClickEvents(ctx, "aB3xY9", 10)
		assert.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, "aB3xY9", events[0].LinkCode)
	})

	t.Run("limit zero returns the full log", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "link_code", "timestamp", "device_type", "browser", "os", "city", "country", "referer", "client_ip"}).
			AddRow(1, "aB3xY9", time.Now(), "Desktop", "Chrome", "Linux", "", "", "", "203.0.113.9")

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `click_events` WHERE link_code = ? ORDER BY timestamp DESC")).
			WithArgs("aB3xY9").
			WillReturnRows(rows)

		events, err := repo.GetClickEvents(ctx, "aB3xY9", 0)
		assert.NoError(t, err)
		assert.Len(t, events, 1)
	})
}

func TestMySQLRepository_CountClickEvents(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}
	ctx := context.Background()

	t.Run("count events for a code", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"count"}).AddRow(42)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `click_events` WHERE link_code = ?")).
			WithArgs("aB3xY9").
			WillReturnRows(rows)

		count, err := repo.CountClickEvents(ctx, "aB3xY9")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), count)
	})
}

func TestMySQLRepository_GetDB(t *testing.T) {
	db, _ := newTestDB(t)

	repo := &MySQLRepository{db: db}
	assert.Equal(t, db, repo.GetDB())
}

func TestMySQLRepository_Close(t *testing.T) {
	db, mock := newTestDB(t)

	repo := &MySQLRepository{db: db}

	mock.ExpectClose()

	err := repo.Close()
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(&gomysql.MySQLError{Number: 1062}))
	assert.False(t, isDuplicateKey(&gomysql.MySQLError{Number: 1040}))
	assert.False(t, isDuplicateKey(assert.AnError))
}
