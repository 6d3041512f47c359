package db

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the question cache backend. Returns nil when no address
// is configured; callers treat a nil client as "cache disabled".
func InitRedis(addr, password string, dbNum int) *redis.Client {
	if addr == "" {
		log.Println("Redis not configured, question cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: could not verify Redis connection: %v", err)
	} else {
		log.Println("Connected to Redis")
	}
	return client
}
