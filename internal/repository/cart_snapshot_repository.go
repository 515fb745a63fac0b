package repository

import (
	"context"

	"app/internal/domain/model"
)

// カートのスナップショット永続化。
// Save はカート操作の副作用として呼ばれる。失敗しても操作自体は成功扱い（呼び出し側でログのみ）。
type CartSnapshotRepository interface {
	// 見つからなければ found=false（エラーにしない）
	Load(ctx context.Context, sessionID string) (cart model.Cart, found bool, err error)
	Save(ctx context.Context, sessionID string, cart model.Cart) error
}
