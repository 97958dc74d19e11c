package idempotency

import (
	"bytes"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

const HeaderKey = "X-Idempotency-Key"

var DefaultMethods = []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(data []byte) (int, error) {
	w.body.Write(data)
	return w.ResponseWriter.Write(data)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// NewMiddleware replays the captured response for a repeated
// (method, URI, idempotency key) instead of running the handlers again.
// The request body is not part of the key. Requests with other methods or
// without the header pass through.
func NewMiddleware(cache *Cache, methods ...string) gin.HandlerFunc {
	if len(methods) == 0 {
		methods = DefaultMethods
	}

	return func(c *gin.Context) {
		token := c.GetHeader(HeaderKey)
		if token == "" || !slices.Contains(methods, c.Request.Method) {
			c.Next()
			return
		}

		key := c.Request.Method + " " + c.Request.RequestURI + " " + token

		if response, ok := cache.Get(key); ok {
			replay(c, response)
			return
		}

		executed := false
		response := cache.Do(key, func() (CachedResponse, bool) {
			executed = true

			writer := &capturingWriter{ResponseWriter: c.Writer}
			c.Writer = writer
			c.Next()
			c.Writer = writer.ResponseWriter

			status := writer.Status()
			return CachedResponse{
				Status: status,
				Header: writer.Header().Clone(),
				Body:   bytes.Clone(writer.body.Bytes()),
			}, storable(status)
		})

		if !executed {
			replay(c, response)
		}
	}
}

// storable rejects responses of requests whose transaction did not commit.
func storable(status int) bool {
	return status < http.StatusInternalServerError && status != http.StatusRequestTimeout
}

func replay(c *gin.Context, response CachedResponse) {
	header := c.Writer.Header()
	for name, values := range response.Header {
		header[name] = slices.Clone(values)
	}

	c.Writer.WriteHeader(response.Status)
	if len(response.Body) == 0 {
		c.Writer.WriteHeaderNow()
	} else {
		_, _ = c.Writer.Write(response.Body)
	}

	c.Abort()
}
