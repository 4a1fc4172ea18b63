package application

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/peerchat-cli/internal/domain"
)

const DefaultPollInterval = 2 * time.Second

type Poller struct {
	service  *ChatService
	interval time.Duration
	deliver  func(domain.AttributedMessage)
	logger   zerolog.Logger
}

func NewPoller(service *ChatService, interval time.Duration, deliver func(domain.AttributedMessage)) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return &Poller{
		service:  service,
		interval: interval,
		deliver:  deliver,
		logger:   service.logger,
	}
}

// Start polls every interval until ctx is done or the returned stop func is
// called. Each tick runs in its own goroutine and ticks may overlap. Stop
// blocks until in-flight ticks have returned.
func (p *Poller) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	ticker := time.NewTicker(p.interval)
	done := make(chan struct{})
	var inflight sync.WaitGroup

	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				inflight.Add(1)
				go func() {
					defer inflight.Done()
					p.tick(ctx)
				}()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
			inflight.Wait()
		})
	}
}

func (p *Poller) tick(ctx context.Context) {
	messages, err := p.service.Poll(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Debug().Err(err).Msg("poll tick failed")
		}
		return
	}

	for _, message := range messages {
		if ctx.Err() != nil {
			return
		}
		p.deliver(message)
	}
}
