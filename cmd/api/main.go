package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/task"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// カート明細用の短いランダムID（uuid先頭8桁）
type shortIDGenerator struct{}

func (g *shortIDGenerator) NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func main() {
	// .envは無くてもよい
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	//DB接続（メニューとカートスナップショット用）
	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Error("db migrate failed", "error", err)
		os.Exit(1)
	}
	if err := db.SeedMenu(gormDB); err != nil {
		logger.Error("menu seed failed", "error", err)
		os.Exit(1)
	}

	//Repository生成
	menuRepo := infraRepo.NewMenuGormRepository(gormDB)
	snapRepo := infraRepo.NewCartSnapshotGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderMemoryRepository()

	//usecaseに渡す部品
	idGen := &shortIDGenerator{}
	checkoutV := validator.NewCheckoutValidator()
	tasks := task.NewRunner(logger, 5*time.Second)

	//Usecase生成
	cartUC := usecase.NewCartUsecase(snapRepo, menuRepo, idGen, logger)
	menuUC := usecase.NewMenuUsecase(menuRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, checkoutV)
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, orderRepo, checkoutV, tasks, cfg.WhatsAppNumber)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(cfg, server.RouteDeps{
		Menu:     handler.NewMenuHandler(menuUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Order:    handler.NewOrderHandler(orderUC),
	})

	logger.Info("starting sweet colony api", "addr", addr, "env", cfg.GoEnv)
	if err := server.Start(e, addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
