package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Pleasure08/gplsmarthubb/internal/domain"
	"github.com/Pleasure08/gplsmarthubb/internal/models"
	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

type marketRepo struct {
	db *gorm.DB
}

func (r *marketRepo) ListPublic(ctx context.Context) ([]models.MarketplaceItem, error) {
	return r.list(ctx, r.db.WithContext(ctx).
		Where("approval_status = ? AND status = ?", domain.ApprovalApproved, domain.ItemStatusAvailable))
}

func (r *marketRepo) ListAll(ctx context.Context) ([]models.MarketplaceItem, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *marketRepo) list(ctx context.Context, q *gorm.DB) ([]models.MarketplaceItem, error) {
	var recs []MarketplaceRecord
	if err := q.Order("date_posted DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]models.MarketplaceItem, len(recs))
	for i := range recs {
		out[i] = recs[i].toModel()
	}
	return out, nil
}

func (r *marketRepo) Find(ctx context.Context, id string) (*models.MarketplaceItem, error) {
	var rec MarketplaceRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	m := rec.toModel()
	return &m, nil
}

func (r *marketRepo) Insert(ctx context.Context, item *models.MarketplaceItem) error {
	if item.ID == "" {
		item.ID = fmt.Sprintf("MP%d", time.Now().UnixMilli())
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusAvailable
	}
	if item.ApprovalStatus == "" {
		item.ApprovalStatus = domain.ApprovalPending
	}
	if item.DatePosted == "" {
		item.DatePosted = time.Now().UTC().Format("2006-01-02")
	}
	return r.db.WithContext(ctx).Create(itemToRecord(item)).Error
}

// SetApprovalStatus runs inside a row-locked transaction so two admins
// cannot decide the same item twice.
func (r *marketRepo) SetApprovalStatus(ctx context.Context, id, approval string) (*models.MarketplaceItem, error) {
	if approval != domain.ApprovalApproved && approval != domain.ApprovalRejected {
		return nil, store.NewValidation("invalid approval status %q", approval)
	}
	var out models.MarketplaceItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec MarketplaceRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return err
		}
		if rec.ApprovalStatus != domain.ApprovalPending {
			return store.NewValidation("item %s is already %s", id, rec.ApprovalStatus)
		}
		rec.ApprovalStatus = approval
		if approval == domain.ApprovalApproved {
			rec.Status = domain.ItemStatusAvailable
		} else {
			rec.Status = domain.ItemStatusUnavailable
		}
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		out = rec.toModel()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *marketRepo) SetStatus(ctx context.Context, id, status string) error {
	if status != domain.ItemStatusAvailable && status != domain.ItemStatusSold {
		return store.NewValidation("invalid status %q", status)
	}
	res := r.db.WithContext(ctx).Model(&MarketplaceRecord{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *marketRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&MarketplaceRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *marketRepo) Clear(ctx context.Context) (int, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&MarketplaceRecord{})
	return int(res.RowsAffected), res.Error
}
