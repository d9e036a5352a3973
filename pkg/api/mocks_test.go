package api

import (
	"io"
	"net/http"
	"strings"
)

// mockDoer は httpkit.Doer のテスト用モックなのだ。
// 呼ばれた回数とリクエストを記録し、指定されたステータスとボディを返すのだ。
type mockDoer struct {
	status  int
	fixture string
	err     error

	calls   int
	lastReq *http.Request
	lastRaw []byte
}

func (m *mockDoer) Do(req *http.Request) (*http.Response, error) {
	m.calls++
	m.lastReq = req
	m.lastRaw = nil
	if req.Body != nil {
		m.lastRaw, _ = io.ReadAll(req.Body)
	}
	if m.err != nil {
		return nil, m.err
	}
	status := m.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(m.fixture)),
		Request:    req,
	}, nil
}

func (m *mockDoer) lastURL() string {
	if m.lastReq == nil {
		return ""
	}
	return m.lastReq.URL.String()
}
