package digest

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

const markerTTL = 24 * time.Hour

type RedisMarker struct {
	client rueidis.Client
	prefix string
}

func NewRedisMarker(client rueidis.Client, prefix string) *RedisMarker {
	return &RedisMarker{
		client: client,
		prefix: prefix,
	}
}

func (m *RedisMarker) MarkSent(ctx context.Context, job, day string) (bool, error) {
	cmd := m.client.B().Set().
		Key(markerKey(m.prefix, job, day)).
		Value("1").
		Nx().
		Ex(markerTTL).
		Build()

	result := m.client.Do(ctx, cmd)
	if err := result.Error(); err != nil {
		// SET NX replies nil when the key already exists.
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func markerKey(prefix, job, day string) string {
	return prefix + ":" + job + ":" + day
}
