package config

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/shouni/go-comment-kit/pkg/pipeline"
)

// minAPIKeyLength を下回るキーは形式不正として弾くのだ。
// Gemini の API キーは実際にはもっと長いので、明らかな設定ミスだけを拾う閾値なのだ。
const minAPIKeyLength = 20

// EnvCredentialStore は環境変数由来の API キーを検証付きで提供する
// pipeline.CredentialStore 実装なのだ。
type EnvCredentialStore struct {
	key string
}

// NewEnvCredentialStore は Config の API キーを包む EnvCredentialStore を返すのだ。
func NewEnvCredentialStore(cfg *Config) *EnvCredentialStore {
	return &EnvCredentialStore{key: cfg.GeminiAPIKey}
}

// APIKey はキーを検証して返すのだ。未設定（空または空白のみ）は
// ErrCredentialMissing、内部に空白を含むか短すぎる場合は
// ErrCredentialInvalid なのだ。
func (s *EnvCredentialStore) APIKey(ctx context.Context) (string, error) {
	trimmed := strings.TrimSpace(s.key)
	if trimmed == "" {
		return "", pipeline.ErrCredentialMissing
	}
	if strings.ContainsAny(trimmed, " \t\n") || utf8.RuneCountInString(trimmed) < minAPIKeyLength {
		return "", pipeline.ErrCredentialInvalid
	}
	return trimmed, nil
}
