package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/google/uuid"
)

// =====================
// Stubs（DB無しで回すための最小実装）
// =====================

type stubSnapshotRepo struct{}

func (s *stubSnapshotRepo) Load(ctx context.Context, sessionID string) (model.Cart, bool, error) {
	return model.Cart{}, false, nil
}

func (s *stubSnapshotRepo) Save(ctx context.Context, sessionID string, cart model.Cart) error {
	return nil
}

type stubMenuRepo struct{}

func menuFixture() []model.MenuItem {
	return []model.MenuItem{
		{ID: "ice-2", Type: model.ProductTypeIceCream, Title: "Choco Blast", Price: 18000},
		{ID: "fry-1", Type: model.ProductTypeFries, Title: "Golden Fries", Price: 12000},
	}
}

func (s *stubMenuRepo) ListItems(ctx context.Context) ([]model.MenuItem, error) {
	return menuFixture(), nil
}

func (s *stubMenuRepo) FindItemByID(ctx context.Context, id string) (model.MenuItem, error) {
	for _, it := range menuFixture() {
		if it.ID == id {
			return it, nil
		}
	}
	return model.MenuItem{}, repo.ErrNotFound
}

func (s *stubMenuRepo) ListAddonsByType(ctx context.Context, t model.ProductType) ([]model.AddonOption, error) {
	switch t {
	case model.ProductTypeIceCream:
		return []model.AddonOption{{Type: t, Label: "Oreo Crumbles"}}, nil
	case model.ProductTypeFries:
		return []model.AddonOption{{Type: t, Label: "Cheese Sauce"}}, nil
	}
	return []model.AddonOption{}, nil
}

func (s *stubMenuRepo) ListSizesByType(ctx context.Context, t model.ProductType) ([]model.SizeVariant, error) {
	switch t {
	case model.ProductTypeIceCream:
		return []model.SizeVariant{{Type: t, Label: "Cone"}, {Type: t, Label: "Cup", Surcharge: 2000}}, nil
	case model.ProductTypeFries:
		return []model.SizeVariant{{Type: t, Label: "Small"}, {Type: t, Label: "Large", Surcharge: 5000}}, nil
	}
	return []model.SizeVariant{}, nil
}

// 投げっぱなしタスクをその場で実行（テストを決定的にする）
type inlineTasks struct{}

func (inlineTasks) Go(name string, fn func(ctx context.Context) error) {
	_ = fn(context.Background())
}

type uuidGen struct{}

func (uuidGen) NewID() string { return uuid.NewString()[:8] }

// =====================
// テストサーバ
// =====================

func newTestServer(t *testing.T) *testClient {
	t.Helper()

	cfg := config.Config{
		Port:           "0",
		SessionSecret:  "test_secret",
		WhatsAppNumber: "6281284914453",
		GoEnv:          "dev",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	checkoutV := validator.NewCheckoutValidator()
	orderRepo := infraRepo.NewOrderMemoryRepository()

	cartUC := usecase.NewCartUsecase(&stubSnapshotRepo{}, &stubMenuRepo{}, uuidGen{}, logger)
	menuUC := usecase.NewMenuUsecase(&stubMenuRepo{})
	orderUC := usecase.NewOrderUsecase(orderRepo, checkoutV)
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, orderRepo, checkoutV, inlineTasks{}, cfg.WhatsAppNumber)

	e := server.New(cfg, server.RouteDeps{
		Menu:     handler.NewMenuHandler(menuUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Order:    handler.NewOrderHandler(orderUC),
	})

	return &testClient{e: e}
}

// cookieを持ち回る簡易クライアント
type testClient struct {
	e       http.Handler
	cookies []*http.Cookie
}

func (c *testClient) doJSON(t *testing.T, method string, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal failed: %v", err)
		}
		rd = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)

	res := rec.Result()
	c.cookies = append(c.cookies, res.Cookies()...)

	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	return res, b
}

func mustDecode(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json.Unmarshal failed: %v body=%s", err, string(body))
	}
}

func requireStatus(t *testing.T, res *http.Response, want int, body []byte) {
	t.Helper()
	if res.StatusCode != want {
		t.Fatalf("status=%d want=%d body=%s", res.StatusCode, want, string(body))
	}
}
