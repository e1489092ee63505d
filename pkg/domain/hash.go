package domain

import "hash/fnv"

// StableHash は文字列から決定論的なハッシュ値を計算するのだ。
// フォールバック定型文や絵文字の選択を「ランダム風だが再現可能」に
// するために使うのだ（FNV-1a）。
func StableHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
