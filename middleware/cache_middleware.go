package middleware

import (
	"bytes"
	"hash/fnv"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/staking/base/ctx"
	"github.com/x-xyz/staking/base/log"
	"github.com/x-xyz/staking/base/metrics"
	"github.com/x-xyz/staking/service/cache"
)

const (
	cacheMiddlewarePfx = "httpCache"
	cacheStatusHeader  = "X-Cache"
)

// cachedResponse is what a cache entry holds of a GET response
type cachedResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// teeWriter copies the body into buf and remembers the status
type teeWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (w *teeWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// cacheKey hashes the path with the query in canonical order, so ?b=2&a=1 and ?a=1&b=2 share an entry
func cacheKey(r *http.Request) string {
	hash := fnv.New64a()
	io.WriteString(hash, r.URL.Path)
	io.WriteString(hash, "?")
	// Encode sorts by key
	io.WriteString(hash, r.URL.Query().Encode())
	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp serves repeated GETs of the same url from svc. Only responses below 400 are kept.
// A request sending "Cache-Control: no-cache" skips the lookup and refreshes the entry.
func CacheHttp(svc cache.Service, met metrics.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet {
				return next(c)
			}
			cont := c.Get("ctx").(ctx.Ctx)
			key := cacheKey(req)

			if req.Header.Get(echo.HeaderCacheControl) != "no-cache" {
				hit := cachedResponse{}
				err := svc.Get(cont, key, &hit)
				if err == nil {
					met.BumpSum("cache.hit", 1, "path", c.Path())
					c.Response().Header().Set(cacheStatusHeader, "HIT")
					return c.Blob(hit.Status, hit.ContentType, hit.Body)
				} else if err != cache.ErrNotFound {
					cont.WithField("err", err).Error("cache.Get failed")
				}
			}
			met.BumpSum("cache.miss", 1, "path", c.Path())

			c.Response().Header().Set(cacheStatusHeader, "MISS")
			tee := &teeWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = tee
			if err := next(c); err != nil {
				c.Error(err)
			}
			if tee.status >= http.StatusBadRequest {
				return nil
			}

			entry := cachedResponse{
				Status:      tee.status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        tee.buf.Bytes(),
			}
			if err := svc.Set(cont, key, entry); err != nil {
				cont.WithFields(log.Fields{"err": err, "key": key}).Error("cache.Set failed")
			}
			return nil
		}
	}
}

// NewHttpCache builds the cache service CacheHttp reads and writes
func NewHttpCache(cfg cache.ServiceConfig) cache.Service {
	cfg.Pfx = cacheMiddlewarePfx
	return cache.New(cfg)
}
