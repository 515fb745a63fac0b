package usecase

import "context"

// カート明細IDの採番（mainでuuidアダプタを注入）
type IDGenerator interface {
	NewID() string
}

// 投げっぱなしタスクの約束。
// 起動するだけで完了は待たない。エラーは実装側の専用ハンドラに集約して捨てる。
type Tasks interface {
	Go(name string, fn func(ctx context.Context) error)
}

// チェックアウトフォームの検証。フィールド名→メッセージ。空mapなら合格。
type CheckoutValidator interface {
	Validate(in CheckoutInput) map[string]string
}
