package identity

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hirewire/portal/internal/core/domain"
	"github.com/hirewire/portal/internal/core/ports"
)

// RedisProvider holds the claim set server-side: the cookie carries only
// an opaque session id and the claims live in Redis under
// session:<id> with a TTL. SetRole rewrites the stored record in place so
// every later request observes the new role without re-login.
type RedisProvider struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

func NewRedisProvider(client *redis.Client, ttl time.Duration, secure bool) *RedisProvider {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisProvider{client: client, ttl: ttl, secure: secure}
}

type sessionRecord struct {
	IdentityID string `json:"identity_id"`
	Role       string `json:"role,omitempty"`
}

func sessionKey(id string) string {
	return "session:" + id
}

func (p *RedisProvider) Authenticate(r *http.Request) (domain.Claims, error) {
	ck, err := r.Cookie(sessionCookie)
	if err != nil || ck.Value == "" {
		return domain.Claims{}, ports.ErrNoIdentity
	}

	raw, err := p.client.Get(r.Context(), sessionKey(ck.Value)).Result()
	if err == redis.Nil {
		return domain.Claims{}, ports.ErrNoIdentity
	}
	if err != nil {
		return domain.Claims{}, fmt.Errorf("session lookup: %w: %w", domain.ErrStorageUnavailable, err)
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.IdentityID == "" {
		return domain.Claims{}, ports.ErrNoIdentity
	}
	return domain.Claims{IdentityID: rec.IdentityID, Role: domain.Role(rec.Role)}, nil
}

func (p *RedisProvider) Issue(w http.ResponseWriter, cl domain.Claims) error {
	id := uuid.NewString()
	data, err := json.Marshal(sessionRecord{IdentityID: cl.IdentityID, Role: string(cl.Role)})
	if err != nil {
		return err
	}

	// Issue has no request context; the write is bounded on its own.
	ctx, cancel := contextWithTimeout()
	defer cancel()
	if err := p.client.Set(ctx, sessionKey(id), data, p.ttl).Err(); err != nil {
		return fmt.Errorf("session store: %w: %w", domain.ErrStorageUnavailable, err)
	}

	http.SetCookie(w, newSessionCookie(id, int(p.ttl.Seconds()), p.secure))
	return nil
}

func (p *RedisProvider) SetRole(w http.ResponseWriter, r *http.Request, role domain.Role) error {
	ck, err := r.Cookie(sessionCookie)
	if err != nil || ck.Value == "" {
		return ports.ErrNoIdentity
	}

	cl, err := p.Authenticate(r)
	if err != nil {
		return err
	}

	data, err := json.Marshal(sessionRecord{IdentityID: cl.IdentityID, Role: string(role)})
	if err != nil {
		return err
	}
	// KeepTTL preserves whatever lifetime the session already has.
	if err := p.client.Set(r.Context(), sessionKey(ck.Value), data, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("session update: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (p *RedisProvider) Clear(w http.ResponseWriter, r *http.Request) error {
	if ck, err := r.Cookie(sessionCookie); err == nil && ck.Value != "" {
		if err := p.client.Del(r.Context(), sessionKey(ck.Value)).Err(); err != nil {
			return fmt.Errorf("session delete: %w: %w", domain.ErrStorageUnavailable, err)
		}
	}
	http.SetCookie(w, newSessionCookie("", -1, p.secure))
	return nil
}
