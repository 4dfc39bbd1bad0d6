package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type hostelRepo struct {
	db *gorm.DB
}

func (r *hostelRepo) List(ctx context.Context) ([]models.Hostel, error) {
	var recs []HostelRecord
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.HostelStatusAvailable).
		Order("date_added DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.Hostel, len(recs))
	for i := range recs {
		out[i] = recs[i].toModel()
	}
	return out, nil
}

// Get bumps the view counter with a single atomic SQL update, then reads
// the row back. Concurrent gets can never lose an increment.
func (r *hostelRepo) Get(ctx context.Context, id string) (*models.Hostel, error) {
	res := r.db.WithContext(ctx).Model(&HostelRecord{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}
	return r.Find(ctx, id)
}

func (r *hostelRepo) Find(ctx context.Context, id string) (*models.Hostel, error) {
	var rec HostelRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	h := rec.toModel()
	return &h, nil
}

func (r *hostelRepo) Insert(ctx context.Context, h *models.Hostel) error {
	if h.ID == "" {
		h.ID = fmt.Sprintf("H%d", time.Now().UnixMilli())
	}
	if h.Status == "" {
		h.Status = domain.HostelStatusAvailable
	}
	if h.DateAdded == "" {
		h.DateAdded = time.Now().UTC().Format("2006-01-02")
	}
	h.Views = 0
	return r.db.WithContext(ctx).Create(hostelToRecord(h)).Error
}

func (r *hostelRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&HostelRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *hostelRepo) Clear(ctx context.Context) (int, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&HostelRecord{})
	return int(res.RowsAffected), res.Error
}
