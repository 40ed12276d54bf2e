package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testValkeyClient connects to the test Valkey on DB 15, skipping if
// unreachable, and cleans up page keys afterwards.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func TestConnectValkey(t *testing.T) {
	client, err := ConnectValkey(envOr("VALKEY_HOST", "localhost"), envOr("VALKEY_PORT", "6379"), os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Errorf("ping after connect: %v", err)
	}
}

func TestPageCacheSetGet(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	key := ProposalKey("cache-test-slug", "proposal")
	html := []byte("<html><body>proposal page</body></html>")

	if _, ok := pc.Get(ctx, key); ok {
		t.Fatal("expected miss before Set")
	}

	pc.Set(ctx, key, html)

	got, ok := pc.Get(ctx, key)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != string(html) {
		t.Errorf("cached HTML = %q", got)
	}
}

func TestPageCacheInvalidateProposal(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	slug := "cache-inv-slug"
	pc.Set(ctx, ProposalKey(slug, "proposal"), []byte("body"))
	pc.Set(ctx, ProposalKey(slug, "landing"), []byte("landing body"))
	pc.Set(ctx, ProposalKey("other-slug", "proposal"), []byte("other"))

	pc.InvalidateProposal(ctx, slug)

	if _, ok := pc.Get(ctx, ProposalKey(slug, "proposal")); ok {
		t.Error("proposal page still cached after invalidation")
	}
	if _, ok := pc.Get(ctx, ProposalKey(slug, "landing")); ok {
		t.Error("landing page still cached after invalidation")
	}
	if _, ok := pc.Get(ctx, ProposalKey("other-slug", "proposal")); !ok {
		t.Error("invalidation removed an unrelated proposal's page")
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	pc := NewPageCache(testValkeyClient(t), time.Minute)
	ctx := context.Background()

	for _, slug := range []string{"all-a", "all-b", "all-c"} {
		pc.Set(ctx, ProposalKey(slug, "proposal"), []byte("x"))
	}

	pc.InvalidateAll(ctx)

	for _, slug := range []string{"all-a", "all-b", "all-c"} {
		if _, ok := pc.Get(ctx, ProposalKey(slug, "proposal")); ok {
			t.Errorf("%s still cached after InvalidateAll", slug)
		}
	}
}
