package storage

import (
	"time"

	"github.com/lcalzada-xor/netwatch/internal/core/domain"
	"github.com/lcalzada-xor/netwatch/internal/core/ports"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteAdapter implements ports.SampleLog using GORM and SQLite.
type SQLiteAdapter struct {
	db *gorm.DB
}

// SampleModel is the GORM model for durable samples. The autoincrement ID is
// the insertion index: "last N" queries order by it instead of scanning.
type SampleModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Timestamp    time.Time `gorm:"index"`
	LinkState    string
	SSID         *string
	Signal       *int
	Reachability string
	RTTMs        *float64
}

// NewSQLiteAdapter initializes the database and migrates schema.
func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&SampleModel{}); err != nil {
		return nil, err
	}

	return &SQLiteAdapter{db: db}, nil
}

// AppendSample appends one sample to the log.
func (a *SQLiteAdapter) AppendSample(s domain.Sample) error {
	model := toModel(s)
	return a.db.Create(&model).Error
}

// LoadRecent returns the most recent n samples, oldest-first.
func (a *SQLiteAdapter) LoadRecent(n int) ([]domain.Sample, error) {
	if n < 1 {
		return nil, nil
	}

	var models []SampleModel
	if err := a.db.Order("id desc").Limit(n).Find(&models).Error; err != nil {
		return nil, err
	}

	// Query returned newest-first; callers want insertion order.
	samples := make([]domain.Sample, len(models))
	for i, m := range models {
		samples[len(models)-1-i] = toDomain(m)
	}
	return samples, nil
}

// AllSamples returns the full log in insertion order.
func (a *SQLiteAdapter) AllSamples() ([]domain.Sample, error) {
	var models []SampleModel
	if err := a.db.Order("id asc").Find(&models).Error; err != nil {
		return nil, err
	}

	samples := make([]domain.Sample, len(models))
	for i, m := range models {
		samples[i] = toDomain(m)
	}
	return samples, nil
}

// CountSamples returns the total number of records in the log.
func (a *SQLiteAdapter) CountSamples() (int64, error) {
	var count int64
	if err := a.db.Model(&SampleModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (a *SQLiteAdapter) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ensure interface compliance
var _ ports.SampleLog = (*SQLiteAdapter)(nil)
