package services

import (
	"context"
	"encoding/json"
	"time"

	"atendimento-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheRelatorio(nome string, payload interface{}, expiration time.Duration) error
	GetRelatorio(nome string, dest interface{}) error
	InvalidateRelatorios() error
	Ping() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1 Set sets a key-value pair in Redis with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2 Get gets a value from Redis by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// 3 Delete deletes a key from Redis
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4 CacheRelatorio caches a computed report payload
func (s *RedisService) CacheRelatorio(nome string, payload interface{}, expiration time.Duration) error {
	return s.Set("relatorio:"+nome, payload, expiration)
}

// 5 GetRelatorio loads a cached report payload
func (s *RedisService) GetRelatorio(nome string, dest interface{}) error {
	return s.Get("relatorio:"+nome, dest)
}

// 6 InvalidateRelatorios drops every cached report
func (s *RedisService) InvalidateRelatorios() error {
	keys, err := s.Client.Keys(s.Ctx, "relatorio:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.Client.Del(s.Ctx, keys...).Err()
}

// 7 Ping checks the connection
func (s *RedisService) Ping() error {
	return s.Client.Ping(s.Ctx).Err()
}
