package repository_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/model"
	infraRepo "storefront/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 発行されたSQLを貯めるだけのlogger
type sqlRecorder struct {
	mu   sync.Mutex
	sqls []string
}

func (r *sqlRecorder) LogMode(logger.LogLevel) logger.Interface      { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{})  {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sqls = append(r.sqls, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.sqls)
	return r.sqls[len(r.sqls)-1]
}

// DBに接続せずSQLだけ組み立てる
func dryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=app password=app dbname=app port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               rec,
	})
	require.NoError(t, err)
	return db, rec
}

func TestCatalogGorm_ListOrdersByPosition(t *testing.T) {
	db, rec := dryRunDB(t)
	r := infraRepo.NewCatalogGormRepository(db)

	_, err := r.ListProducts(context.Background())
	require.NoError(t, err)
	sql := rec.last(t)
	assert.Contains(t, sql, "is_active = true")
	assert.Regexp(t, `ORDER BY position asc,\s*id asc`, sql)

	_, err = r.ListCategories(context.Background())
	require.NoError(t, err)
	sql = rec.last(t)
	assert.Regexp(t, `ORDER BY position asc,\s*id asc`, sql)
	assert.NotContains(t, sql, "name asc")
}

// default付きのboolだとfalseがINSERTから落ちる
func TestCatalogGorm_CreateKeepsInactiveFlag(t *testing.T) {
	db, rec := dryRunDB(t)

	p := model.Product{ID: "hidden", Name: "Hidden", Currency: "ETB", IsActive: false, Position: 9}
	require.NoError(t, db.Create(&p).Error)

	sql := rec.last(t)
	require.True(t, strings.HasPrefix(sql, "INSERT INTO"), sql)
	assert.Contains(t, sql, `"is_active"`)
	assert.Contains(t, sql, `"position"`)
}
