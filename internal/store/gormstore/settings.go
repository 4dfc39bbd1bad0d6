package gormstore

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
)

type settingsRepo struct {
	db *gorm.DB
}

// seed inserts any default setting row that does not exist yet. Existing
// rows are left alone.
func (r *settingsRepo) seed(ctx context.Context) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, s := range domain.DefaultSettings {
		rec := SettingRecord{
			Key:         s.Key,
			Value:       s.Value,
			Type:        s.Type,
			Description: s.Description,
			Updated:     now,
		}
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&rec).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *settingsRepo) Get(ctx context.Context) (map[string]any, error) {
	if err := r.seed(ctx); err != nil {
		return nil, err
	}
	var recs []SettingRecord
	if err := r.db.WithContext(ctx).Order("`key` ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make(map[string]any, len(recs))
	for _, rec := range recs {
		out[rec.Key] = coerce(rec)
	}
	return out, nil
}

func (r *settingsRepo) Update(ctx context.Context, patch map[string]string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for key, value := range patch {
		// Unknown keys are dropped, matching the sheet backend.
		res := r.db.WithContext(ctx).Model(&SettingRecord{}).
			Where("`key` = ?", key).
			Updates(map[string]any{"value": value, "updated": now})
		if res.Error != nil {
			return res.Error
		}
	}
	return nil
}

func coerce(rec SettingRecord) any {
	switch rec.Type {
	case domain.SettingTypeBoolean:
		return rec.Value == "true"
	case domain.SettingTypeNumber:
		if n, err := strconv.Atoi(rec.Value); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(rec.Value, 64); err == nil {
			return f
		}
		return rec.Value
	default:
		return rec.Value
	}
}
