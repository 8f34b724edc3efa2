package main

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	appmarket "marketboard/internal/application/service/market"
	market "marketboard/internal/domain/entity/market"
	"marketboard/internal/infrastructure/mockdata"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu      sync.Mutex
	err     error
	batches []*market.Batch
	notify  chan struct{}
}

func (p *recordingPublisher) Publish(ctx context.Context, batch *market.Batch) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.batches = append(p.batches, batch)
	select {
	case p.notify <- struct{}{}:
	default:
	}
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.batches)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestPumpBatches_PublishesUntilCancelled(t *testing.T) {
	svc := appmarket.NewService(mockdata.NewSeededGenerator(1), 20)
	pub := &recordingPublisher{notify: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- pumpBatches(ctx, svc, pub, 5*time.Millisecond, quietLogger())
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-pub.notify:
		case <-time.After(time.Second):
			t.Fatal("no batch published")
		}
	}
	cancel()

	require.ErrorIs(t, <-done, context.Canceled)
	require.GreaterOrEqual(t, pub.count(), 2)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.NotEqual(t, pub.batches[0].ID, pub.batches[1].ID)
	require.Len(t, pub.batches[0].Companies, 20)
	require.Nil(t, svc.Current())
}

func TestPumpBatches_PublishErrorStops(t *testing.T) {
	svc := appmarket.NewService(mockdata.NewSeededGenerator(1), 20)
	publishErr := errors.New("channel closed")

	err := pumpBatches(context.Background(), svc, &recordingPublisher{err: publishErr}, time.Hour, quietLogger())
	require.ErrorIs(t, err, publishErr)
}
