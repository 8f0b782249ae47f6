// Package flash keeps one-shot notices ("Venue X was successfully
// listed!") between a redirect and the next rendered page. Messages are
// stored in Redis under an anonymous session cookie and consumed on
// first read.
package flash

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stagebook/stagebook/internal/config"
)

const (
	cookieName = "stagebook_session"
	contextKey = "flash_session_id"
	ttl        = time.Hour
)

type Store struct {
	rdb    *redis.Client
	logger *zap.SugaredLogger
}

func NewStore(cfg *config.Config, logger *zap.SugaredLogger) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	})

	return &Store{rdb: rdb, logger: logger}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Flash queues a message for the requester's session. Failures are
// logged and swallowed: a lost notice never fails the request.
func (s *Store) Flash(c *gin.Context, message string) {
	key := s.key(sessionID(c))
	ctx := c.Request.Context()

	if err := s.rdb.RPush(ctx, key, message).Err(); err != nil {
		s.logger.Warnw("flash message dropped", "error", err)
		return
	}
	if err := s.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		s.logger.Warnw("flash expiry not set", "error", err)
	}
}

// Messages drains and returns all queued messages for the requester's
// session, oldest first.
func (s *Store) Messages(c *gin.Context) []string {
	key := s.key(sessionID(c))
	ctx := c.Request.Context()

	messages, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warnw("flash messages unavailable", "error", err)
		}
		return nil
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Warnw("flash messages not cleared", "error", err)
	}
	return messages
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) key(sessionID string) string {
	return fmt.Sprintf("flash:%s", sessionID)
}

// sessionID reads the session cookie, minting one on first contact.
// The minted id is cached on the context so every Flash and Messages
// call within the request shares one id and one Set-Cookie header.
func sessionID(c *gin.Context) string {
	if sid, err := c.Cookie(cookieName); err == nil && sid != "" {
		return sid
	}
	if sid, ok := c.Get(contextKey); ok {
		return sid.(string)
	}
	sid := uuid.New().String()
	c.Set(contextKey, sid)
	c.SetCookie(cookieName, sid, int(ttl.Seconds()), "/", "", false, true)
	return sid
}
