package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	req := require.New(t)
	b := NewLinear(time.Millisecond, 3*time.Millisecond)
	req.Equal(time.Duration(0), b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
	for i := 0; i < 5; i++ {
		req.NoError(b.Backoff(context.Background()))
	}
	req.Equal(3*time.Millisecond, b.NextDuration)
	b.Reset()
	req.Equal(time.Duration(0), b.NextDuration)
}

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 8*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.NextDuration)
}

func TestBackoffCancel(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Second, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.Error(b.Backoff(ctx))
}
