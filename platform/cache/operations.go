package cache

import (
	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn *redis.Conn) (string, error) {
	return redis.String((*conn).Do("GET", key))
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

func SetEx(key string, seconds int, value interface{}, conn *redis.Conn) error {
	_, err := (*conn).Do("SETEX", key, seconds, value)
	return err
}
