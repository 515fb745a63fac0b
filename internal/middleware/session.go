package middleware

import (
	"errors"
	"net/http"
	"time"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxSessionIDKey = "session_id" // string

	sessionCookieName = "sc_session"
)

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// 端末毎の匿名セッション。ログインは無い（1端末1買い物客が前提）。
// 署名付きcookieにセッションIDを入れ、無ければその場で発行する。
func Session(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""

			// 既存cookieがあれば検証してIDを取り出す
			if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				sid = parseSessionToken(cookie.Value, cfg.SessionSecret)
			}

			// 無い／壊れているなら新規発行
			if sid == "" {
				sid = uuid.NewString()
				token, err := signSessionToken(sid, cfg.SessionSecret)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("session error"))
				}
				c.SetCookie(&http.Cookie{
					Name:     sessionCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxSessionIDKey, sid)
			return next(c)
		}
	}
}

// セッションIDをHS256で署名する
func signSessionToken(sid string, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// 検証に失敗したら空文字（呼び出し側が再発行する）
func parseSessionToken(raw string, secret string) string {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return ""
	}
	return sid
}
