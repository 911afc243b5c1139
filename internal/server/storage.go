package server

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"
)

// NewLimiterStorage connects the rate limiter to Redis so that several
// replicas share one budget per client. An empty URL keeps the limiter's
// counters in process memory and returns nil storage.
func NewLimiterStorage(url string) (storage fiber.Storage, err error) {
	if url == "" {
		return nil, nil
	}

	// redis.New panics when the initial ping fails.
	defer func() {
		if r := recover(); r != nil {
			storage = nil
			err = fmt.Errorf("failed to connect limiter storage: %v", r)
		}
	}()

	return redis.New(redis.Config{URL: url}), nil
}
