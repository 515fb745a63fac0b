package task

import (
	"context"
	"log/slog"
	"time"
)

// Runner は投げっぱなしタスクの唯一の入口。
// 起動して完了は待たない。エラーはここのハンドラでログして捨てる（利用者には決して出さない）。
type Runner struct {
	logger  *slog.Logger
	timeout time.Duration
}

func NewRunner(logger *slog.Logger, timeout time.Duration) *Runner {
	return &Runner{logger: logger, timeout: timeout}
}

// Go はタスクをgoroutineで起動する。呼び出し元のcontextには紐付けない
// （レスポンス返却後も走り切らせるため。打ち切りはtimeoutのみ）。
func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		defer func() {
			if rec := recover(); rec != nil {
				r.logger.Error("best-effort task panicked", "task", name, "panic", rec)
			}
		}()

		if err := fn(ctx); err != nil {
			// 開発者向けの診断ログのみ。呼び出し側の流れは既に先へ進んでいる。
			r.logger.Warn("best-effort task failed", "task", name, "error", err)
		}
	}()
}
