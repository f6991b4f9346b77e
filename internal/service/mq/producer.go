package mq

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewProducer 按配置选择消息队列实现，"none" 返回 nil (不发送事件)
func NewProducer(mqType string, rdb *redis.Client, brokers []string) (Producer, error) {
	switch mqType {
	case "", "none":
		return nil, nil
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("mq_type=redis 需要启用 redis")
		}
		return NewRedisProducer(rdb, 100000), nil
	case "kafka":
		if len(brokers) == 0 {
			return nil, fmt.Errorf("mq_type=kafka 需要配置 kafka.brokers")
		}
		return NewKafkaProducer(brokers), nil
	default:
		return nil, fmt.Errorf("未知的 mq_type: %s", mqType)
	}
}
