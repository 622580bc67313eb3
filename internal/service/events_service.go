package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/observability"
)

// Derived-view cache keys, one per aggregate endpoint.
func gradebookCacheKey(ownerID string) string { return fmt.Sprintf("gradebook:owner:%s", ownerID) }
func degreeCacheKey(ownerID string) string    { return fmt.Sprintf("degree:owner:%s", ownerID) }
func dashboardCacheKey(ownerID string) string { return fmt.Sprintf("dashboard:owner:%s", ownerID) }

// ChangeBroadcaster fans mutation events out to other nodes and drops the
// owner's derived-view caches so every session recomputes from fresh
// state. Announce never fails the calling mutation; broker trouble is
// logged and absorbed.
type ChangeBroadcaster interface {
	Announce(ctx context.Context, ownerID, entity, action string, entityID uint)
	Start(ctx context.Context)
}

type changeBroadcaster struct {
	redis        *redis.Client
	redisChannel string
	nats         *nats.Conn
	natsSubject  string
	queueGroup   string
	logger       zerolog.Logger
	nodeID       string
	now          func() time.Time
}

// NewChangeBroadcaster constructs the mutation fan-out. channelBase seeds
// both the redis channel and the NATS subject; either client may be nil.
func NewChangeBroadcaster(redisClient *redis.Client, channelBase string, natsConn *nats.Conn, logger zerolog.Logger) ChangeBroadcaster {
	channel := ""
	subject := ""
	if channelBase != "" {
		channel = channelBase + ":changes"
		subject = strings.ReplaceAll(channelBase, ":", ".") + ".changes"
	}

	return &changeBroadcaster{
		redis:        redisClient,
		redisChannel: channel,
		nats:         natsConn,
		natsSubject:  subject,
		queueGroup:   "trackademic-changes",
		logger:       logger.With().Str("component", "change_broadcaster").Logger(),
		nodeID:       uuid.NewString(),
		now:          time.Now,
	}
}

func (b *changeBroadcaster) Announce(ctx context.Context, ownerID, entity, action string, entityID uint) {
	b.invalidate(ctx, ownerID)

	event := dto.ChangeEvent{
		NodeID:   b.nodeID,
		OwnerID:  ownerID,
		Entity:   entity,
		Action:   action,
		EntityID: entityID,
		At:       b.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.Warn().Err(err).Msg("failed to encode change event")
		return
	}

	if b.redis != nil && b.redisChannel != "" {
		if err := b.redis.Publish(ctx, b.redisChannel, payload).Err(); err != nil {
			b.logger.Warn().Err(err).Msg("failed to publish change event to redis")
		}
	}

	if b.nats != nil && b.natsSubject != "" {
		if err := b.nats.Publish(b.natsSubject, payload); err != nil {
			b.logger.Warn().Err(err).Msg("failed to publish change event to nats")
		}
	}

	observability.ChangeEventsPublishedTotal().WithLabelValues(entity, action).Inc()
}

func (b *changeBroadcaster) Start(ctx context.Context) {
	if b.redis != nil && b.redisChannel != "" {
		go b.consumeRedis(ctx)
	}
	if b.nats != nil && b.natsSubject != "" {
		go b.consumeNATS(ctx)
	}
}

func (b *changeBroadcaster) consumeRedis(ctx context.Context) {
	pubsub := b.redis.Subscribe(ctx, b.redisChannel)
	defer func() { _ = pubsub.Close() }()

	backoff := time.Second
	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			// The subscription survives broker hiccups; back off and
			// keep receiving until the context is cancelled.
			b.logger.Warn().Err(err).Dur("backoff", backoff).Msg("change event redis receive failed, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second
		b.handleEvent(ctx, []byte(msg.Payload))
	}
}

func (b *changeBroadcaster) consumeNATS(ctx context.Context) {
	sub, err := b.nats.QueueSubscribe(b.natsSubject, b.queueGroup, func(msg *nats.Msg) {
		b.handleEvent(ctx, msg.Data)
	})
	if err != nil {
		b.logger.Error().Err(err).Msg("failed to subscribe to nats changes subject")
		return
	}

	go func() {
		<-ctx.Done()
		if err := sub.Drain(); err != nil {
			b.logger.Warn().Err(err).Msg("failed to drain nats changes subscription")
		}
	}()
}

func (b *changeBroadcaster) handleEvent(ctx context.Context, payload []byte) {
	var event dto.ChangeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		b.logger.Warn().Err(err).Msg("invalid change event payload")
		return
	}

	if event.NodeID == b.nodeID {
		return
	}

	b.invalidate(ctx, event.OwnerID)
}

func (b *changeBroadcaster) invalidate(ctx context.Context, ownerID string) {
	if b.redis == nil || ownerID == "" {
		return
	}

	keys := []string{
		gradebookCacheKey(ownerID),
		degreeCacheKey(ownerID),
		dashboardCacheKey(ownerID),
	}
	if err := b.redis.Del(ctx, keys...).Err(); err != nil {
		b.logger.Warn().Err(err).Msg("failed to drop derived view caches")
	}
}
