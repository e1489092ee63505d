package images

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// キャッシュの既定ポリシーなのだ。
const (
	// DefaultCacheTTL を超えた画像エントリは鮮度切れとして再取得されるのだ。
	DefaultCacheTTL = 10 * time.Minute
	// DefaultCacheMaxEntries を超えて追加された時点で古いものから間引くのだ。
	DefaultCacheMaxEntries = 50
	// DefaultEvictBatch は 1 回の間引きで削除するエントリ数なのだ。
	DefaultEvictBatch = 10
)

// Entry は取得済み画像 1 枚分のキャッシュペイロードです。
// Data は base64 エンコード済みで、そのままリクエストの画像パートに使えます。
type Entry struct {
	MimeType  string
	Data      string // base64
	Timestamp time.Time
}

// BoundedCache は (URL, 最大幅) をキーとする、サイズと時間の両方で
// 制限された画像キャッシュです。TTL 管理は go-cache に任せ、
// 件数上限と「最古 n 件の間引き」をこの層で上乗せしています。
// 変更操作は単一のミューテックスで直列化されます。
type BoundedCache struct {
	mu         sync.Mutex
	store      *cache.Cache
	maxEntries int
	evictBatch int
}

// NewBoundedCache は新しい BoundedCache を生成するのだ。
// ttl・maxEntries・evictBatch に 0 以下を渡すと既定値が使われるのだ。
func NewBoundedCache(ttl time.Duration, maxEntries, evictBatch int) *BoundedCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	if evictBatch <= 0 {
		evictBatch = DefaultEvictBatch
	}
	return &BoundedCache{
		store:      cache.New(ttl, 2*ttl),
		maxEntries: maxEntries,
		evictBatch: evictBatch,
	}
}

// cacheKey は URL と最大幅からキャッシュキーを合成するのだ。
func cacheKey(url string, maxWidth int) string {
	return fmt.Sprintf("%s|w=%d", url, maxWidth)
}

// Get は鮮度内のエントリを返します。期限切れはミス扱いです。
func (c *BoundedCache) Get(url string, maxWidth int) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.store.Get(cacheKey(url, maxWidth))
	if !ok {
		return Entry{}, false
	}
	entry, ok := v.(Entry)
	return entry, ok
}

// Put はエントリを格納し、件数が上限を超えたら最古の evictBatch 件を間引くのだ。
func (c *BoundedCache) Put(url string, maxWidth int, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(cacheKey(url, maxWidth), entry, cache.DefaultExpiration)
	if c.store.ItemCount() > c.maxEntries {
		c.evictOldestLocked(c.evictBatch)
	}
}

// EvictOldest はタイムスタンプの古い順に n 件を削除します。
func (c *BoundedCache) EvictOldest(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictOldestLocked(n)
}

// Len は現在の（期限切れ未清掃を含む）エントリ数を返すのだ。
func (c *BoundedCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.ItemCount()
}

func (c *BoundedCache) evictOldestLocked(n int) {
	type aged struct {
		key string
		ts  time.Time
	}

	items := c.store.Items()
	all := make([]aged, 0, len(items))
	for key, item := range items {
		entry, ok := item.Object.(Entry)
		if !ok {
			// 型の合わないものは即破棄対象なのだ
			c.store.Delete(key)
			continue
		}
		all = append(all, aged{key: key, ts: entry.Timestamp})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ts.Before(all[j].ts) })

	if n > len(all) {
		n = len(all)
	}
	for _, a := range all[:n] {
		c.store.Delete(a.key)
	}
}
