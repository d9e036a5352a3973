package urlutil

import "strings"

const (
	insecurePrefix = "http://"
	securePrefix   = "https://"
)

// NormalizeURL は安全でない http スキームを https に書き換えます。
// プロトコル相対URL（//host/...）も https として扱います。
// それ以外のスキームや、すでに https のURLは変更しません。
func NormalizeURL(raw string) string {
	switch {
	case len(raw) >= len(insecurePrefix) && strings.EqualFold(raw[:len(insecurePrefix)], insecurePrefix):
		return securePrefix + raw[len(insecurePrefix):]
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	default:
		return raw
	}
}
