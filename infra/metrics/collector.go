package metrics

import (
	"context"

	"github.com/kilianp07/chargeinsight/core/dashboard"
	coremetrics "github.com/kilianp07/chargeinsight/core/metrics"
	"github.com/kilianp07/chargeinsight/infra/logger"
	"github.com/kilianp07/chargeinsight/internal/eventbus"
)

// StartRefreshCollector subscribes to dashboard refreshes and records them on
// rec. It stops when the context is canceled or the bus is closed. The
// returned channel is closed once the collector has unsubscribed.
func StartRefreshCollector(ctx context.Context, bus *eventbus.Bus[dashboard.Refresh], rec coremetrics.RefreshRecorder, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || rec == nil {
		close(done)
		return done
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := rec.RecordRefresh(coremetrics.RefreshEvent{
					Generation: ev.Generation,
					Range:      ev.Range.String(),
					Time:       ev.At,
				}); err != nil {
					log.Warnf("record refresh: %v", err)
				}
			}
		}
	}()
	return done
}
