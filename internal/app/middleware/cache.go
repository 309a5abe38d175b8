package middleware

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type cacheEntry struct {
	Content    []byte
	Expiration time.Time
}

// responseCache holds cached GET payloads keyed by hashed request identity
var responseCache = struct {
	sync.RWMutex
	items map[string]cacheEntry
}{items: make(map[string]cacheEntry)}

// CacheConfig configures the response cache middleware
type CacheConfig struct {
	Expiration time.Duration
	Methods    []string
	KeyFunc    func(*gin.Context) string
}

// DefaultCacheConfig caches GET responses for five minutes
var DefaultCacheConfig = CacheConfig{
	Expiration: 5 * time.Minute,
	Methods:    []string{http.MethodGet},
	KeyFunc:    defaultKeyFunc,
}

func hashKey(key string) string {
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}

// defaultKeyFunc derives the cache key from path plus canonical query string.
// url.Values.Encode sorts the keys, so equivalent URLs share one entry.
func defaultKeyFunc(c *gin.Context) string {
	return hashKey(c.Request.URL.Path + "?" + c.Request.URL.Query().Encode())
}

// Cache serves cached responses for the configured methods
func Cache(config ...CacheConfig) gin.HandlerFunc {
	cfg := DefaultCacheConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = DefaultCacheConfig.Expiration
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultCacheConfig.Methods
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = DefaultCacheConfig.KeyFunc
	}

	return func(c *gin.Context) {
		cacheable := false
		for _, method := range cfg.Methods {
			if c.Request.Method == method {
				cacheable = true
				break
			}
		}
		if !cacheable {
			c.Next()
			return
		}

		key := cfg.KeyFunc(c)

		responseCache.RLock()
		entry, found := responseCache.items[key]
		responseCache.RUnlock()

		if found && entry.Expiration.After(time.Now()) {
			c.Data(http.StatusOK, "application/json; charset=utf-8", entry.Content)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		// only successful responses are cached
		if c.Writer.Status() == http.StatusOK {
			responseCache.Lock()
			responseCache.items[key] = cacheEntry{
				Content:    writer.body.Bytes(),
				Expiration: time.Now().Add(cfg.Expiration),
			}
			responseCache.Unlock()
		}
	}
}

// CacheByParams caches GET responses keyed by the named query parameters
func CacheByParams(expiration time.Duration, params ...string) gin.HandlerFunc {
	return Cache(CacheConfig{
		Expiration: expiration,
		Methods:    []string{http.MethodGet},
		KeyFunc: func(c *gin.Context) string {
			keyParts := []string{c.Request.URL.Path}
			for _, param := range params {
				if value := c.Query(param); value != "" {
					keyParts = append(keyParts, param+"="+value)
				}
			}
			return hashKey(strings.Join(keyParts, "&"))
		},
	})
}

// PurgeCache drops every cached response
func PurgeCache() {
	responseCache.Lock()
	responseCache.items = make(map[string]cacheEntry)
	responseCache.Unlock()
}

// responseWriter captures the response body while writing it through
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheStats reports the current cache contents
func CacheStats() map[string]interface{} {
	responseCache.RLock()
	defer responseCache.RUnlock()

	items := make([]map[string]interface{}, 0, len(responseCache.items))
	for key, entry := range responseCache.items {
		items = append(items, map[string]interface{}{
			"key":        key,
			"size":       len(entry.Content),
			"expiration": entry.Expiration.Format(time.RFC3339),
			"expired":    entry.Expiration.Before(time.Now()),
		})
	}

	return map[string]interface{}{
		"total_items": len(responseCache.items),
		"items":       items,
	}
}

func init() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			cleanExpiredCache()
		}
	}()
}

func cleanExpiredCache() {
	now := time.Now()

	responseCache.Lock()
	defer responseCache.Unlock()

	for key, entry := range responseCache.items {
		if entry.Expiration.Before(now) {
			delete(responseCache.items, key)
		}
	}
}
