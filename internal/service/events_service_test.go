package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/trackademic/trackademic-api/internal/dto"
)

func seedViewCaches(t *testing.T, ctx context.Context, client *redis.Client, ownerID string) {
	t.Helper()
	for _, key := range []string{gradebookCacheKey(ownerID), degreeCacheKey(ownerID), dashboardCacheKey(ownerID)} {
		require.NoError(t, client.Set(ctx, key, "cached", 0).Err())
	}
}

func remoteEventPayload(t *testing.T, ownerID string) []byte {
	t.Helper()
	payload, err := json.Marshal(dto.ChangeEvent{
		NodeID:   "other-node",
		OwnerID:  ownerID,
		Entity:   "class",
		Action:   dto.ChangeActionUpdated,
		EntityID: 1,
		At:       time.Now().UTC(),
	})
	require.NoError(t, err)
	return payload
}

func TestChangeBroadcasterRemoteEventInvalidatesCaches(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	broadcaster := NewChangeBroadcaster(client, "trackademic", nil, zerolog.Nop())
	broadcaster.Start(ctx)

	seedViewCaches(t, ctx, client, "owner-9")
	payload := remoteEventPayload(t, "owner-9")

	// Publishing repeats until the subscriber goroutine is attached and
	// has dropped the cached views.
	require.Eventually(t, func() bool {
		client.Publish(ctx, "trackademic:changes", payload)
		return client.Exists(ctx, gradebookCacheKey("owner-9"), degreeCacheKey("owner-9"), dashboardCacheKey("owner-9")).Val() == 0
	}, 5*time.Second, 50*time.Millisecond)
}

func TestChangeBroadcasterOwnEventsAreIgnored(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	broadcaster := NewChangeBroadcaster(client, "trackademic", nil, zerolog.Nop()).(*changeBroadcaster)
	broadcaster.Start(ctx)

	ownPayload, err := json.Marshal(dto.ChangeEvent{
		NodeID:  broadcaster.nodeID,
		OwnerID: "owner-9",
		Entity:  "class",
		Action:  dto.ChangeActionUpdated,
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return client.Publish(ctx, "trackademic:changes", ownPayload).Val() == 1
	}, 5*time.Second, 50*time.Millisecond)

	seedViewCaches(t, ctx, client, "owner-9")
	client.Publish(ctx, "trackademic:changes", ownPayload)

	// The node's own events were already invalidated locally in
	// Announce; the consumer must not touch the caches again.
	time.Sleep(200 * time.Millisecond)
	require.Equal(t, int64(3), client.Exists(ctx, gradebookCacheKey("owner-9"), degreeCacheKey("owner-9"), dashboardCacheKey("owner-9")).Val())
}

func TestChangeBroadcasterSurvivesRedisRestart(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	broadcaster := NewChangeBroadcaster(client, "trackademic", nil, zerolog.Nop())
	broadcaster.Start(ctx)

	payload := remoteEventPayload(t, "owner-9")
	require.Eventually(t, func() bool {
		return client.Publish(ctx, "trackademic:changes", payload).Val() == 1
	}, 5*time.Second, 50*time.Millisecond)

	// Drop every connection; the consume loop must resubscribe instead
	// of exiting.
	mr.Close()
	require.NoError(t, mr.Restart())

	seedViewCaches(t, ctx, client, "owner-9")
	require.Eventually(t, func() bool {
		client.Publish(ctx, "trackademic:changes", payload)
		return client.Exists(ctx, gradebookCacheKey("owner-9"), degreeCacheKey("owner-9"), dashboardCacheKey("owner-9")).Val() == 0
	}, 10*time.Second, 100*time.Millisecond)
}
