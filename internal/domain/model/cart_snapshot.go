package model

import "time"

// カートの永続化スナップショット。
// セッションIDを固定キーにJSONを丸ごと保存し、次回ロード時にそのまま復元する。
// バージョニングやマイグレーションは行わない。
type CartSnapshot struct {
	SessionID string    `gorm:"type:varchar(64);primaryKey" json:"session_id"`
	Payload   string    `gorm:"type:text;not null" json:"payload"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
