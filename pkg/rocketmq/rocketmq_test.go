package rocketmq

import (
	"context"
	"testing"

	"Worklog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProducer_Disabled(t *testing.T) {
	for _, cfg := range []*config.RocketMQConfig{nil, {Topic: "x"}} {
		p, cleanup, err := InitProducer(cfg)
		require.NoError(t, err)
		assert.False(t, p.Enabled())
		assert.NoError(t, p.SendMsg(context.Background(), "x", []byte("{}")))
		cleanup()
	}
}
