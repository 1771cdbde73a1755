// Package http holds the outbound HTTP client factory and the inbound platform handlers.
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultUserAgent is sent on every upstream request unless the caller sets one.
const DefaultUserAgent = "market-backend/1.0"

// NewHTTPClient は外部API用の HTTP クライアントを生成します。
//
// 主な設定:
//   - Proxy: 環境変数 (HTTP_PROXY など) があれば利用
//   - Dialer.Timeout: 接続できない上流を早めに失敗させる
//   - MaxIdleConnsPerHost: 同じホストへの並行リクエストで接続を再利用
//   - Client.Timeout: 呼び出し側が渡すリクエスト全体のタイムアウト
//
// http.DefaultClient はタイムアウトがないため、上流呼び出しには使わないこと。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: t, userAgent: DefaultUserAgent},
	}
}

// userAgentTransport は User-Agent が未設定のリクエストにだけヘッダを付与します。
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
