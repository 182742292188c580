package cache

import (
	"github.com/gomodule/redigo/redis"
)

func Get(key string, conn *redis.Conn) (string, error) {
	return redis.String((*conn).Do("GET", key))
}

func Set(key string, value interface{}, conn *redis.Conn) error {
	reply, err := redis.String((*conn).Do("SET", key, value))
	if err != nil {
		return err
	}
	if reply != "OK" {
		return redis.ErrNil
	}
	return nil
}

func Del(key string, conn *redis.Conn) error {
	_, err := (*conn).Do("DEL", key)
	return err
}

func Incr(key string, conn *redis.Conn) (int, error) {
	return redis.Int((*conn).Do("INCR", key))
}
