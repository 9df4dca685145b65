package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can be tested against miniredis
type Client interface {
	redis.UniversalClient
}
