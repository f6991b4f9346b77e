package mq

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	p, err := NewProducer("none", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = NewProducer("redis", nil, nil)
	assert.Error(t, err)

	// 不会真正连接，XADD 时才会建立连接
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer rdb.Close()
	p, err = NewProducer("redis", rdb, nil)
	require.NoError(t, err)
	assert.IsType(t, &RedisProducer{}, p)
	assert.NoError(t, p.Close())

	_, err = NewProducer("kafka", nil, nil)
	assert.Error(t, err)

	p, err = NewProducer("kafka", nil, []string{"localhost:9092"})
	require.NoError(t, err)
	assert.IsType(t, &KafkaProducer{}, p)
	assert.NoError(t, p.Close())

	_, err = NewProducer("rabbitmq", nil, nil)
	assert.Error(t, err)
}
