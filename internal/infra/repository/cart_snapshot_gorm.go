package repository

import (
	"context"
	"encoding/json"
	"errors"

	"app/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartSnapshotGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartSnapshotGormRepository(db *gorm.DB) *CartSnapshotGormRepository {
	return &CartSnapshotGormRepository{db: db}
}

// セッションのスナップショットを復元。無ければ found=false。
// 壊れたpayloadは「無かった」扱い（マイグレーションは行わない仕様）。
func (r *CartSnapshotGormRepository) Load(ctx context.Context, sessionID string) (model.Cart, bool, error) {
	var snap model.CartSnapshot
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, false, nil
	}
	if err != nil {
		return model.Cart{}, false, err
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(snap.Payload), &cart); err != nil {
		return model.Cart{}, false, nil
	}
	return cart, true, nil
}

// スナップショットをupsertで丸ごと保存
func (r *CartSnapshotGormRepository) Save(ctx context.Context, sessionID string, cart model.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	snap := model.CartSnapshot{
		SessionID: sessionID,
		Payload:   string(payload),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&snap).Error
}
