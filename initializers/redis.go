package initializers

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

// ConnectToRedis wires up the settings cache. Redis is optional: when REDIS_ADDR
// is unset or the server is unreachable the gateway falls back to hitting the
// backend directly.
func ConnectToRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, settings cache disabled.")
		return
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("Failed to connect to Redis, settings cache disabled:", err)
		return
	}

	Redis = client
	log.Println("Connected to Redis.")
}
