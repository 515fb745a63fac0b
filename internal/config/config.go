package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	SessionSecret string // セッションcookieの署名シークレット

	// 注文サマリーの送り先。買い物客が指定するものではない固定値。
	WhatsAppNumber string

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）
}

// Loadは環境変数から設定を読む。DB接続情報はinfra/dbが直接読む。
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		SessionSecret:  getenv("SESSION_SECRET", "dev_secret_change_me"),
		WhatsAppNumber: getenv("WA_NUMBER", "6281284914453"),
		GoEnv:          getenv("GO_ENV", "dev"),
		FEURL:          os.Getenv("FE_URL"),
	}

	// 本番だけは開発用シークレットを許さない
	if cfg.GoEnv == "prod" && os.Getenv("SESSION_SECRET") == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required in prod")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
