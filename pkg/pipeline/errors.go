package pipeline

import "errors"

var (
	// ErrCredentialMissing は API キーが設定されていないことを示すのだ。
	ErrCredentialMissing = errors.New("pipeline: API クレデンシャルが設定されていないのだ")
	// ErrCredentialInvalid は API キーが形式的に不正であることを示すのだ。
	ErrCredentialInvalid = errors.New("pipeline: API クレデンシャルが不正なのだ")
)
