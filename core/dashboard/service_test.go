package dashboard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeinsight/core/model"
	"github.com/kilianp07/chargeinsight/internal/eventbus"
)

// gateForecaster blocks predictions over exactly hold records until release
// is closed.
type gateForecaster struct {
	hold    int
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gateForecaster) Predict(series []model.DailyRecord) model.PredictionResult {
	if len(series) == g.hold {
		g.once.Do(func() { close(g.entered) })
		<-g.release
	}
	return model.PredictionResult{Predictions: []model.PredictionPoint{}, Source: model.SourceLocalAnalysis}
}

func TestService_SetWindowPublishes(t *testing.T) {
	bus := eventbus.New[Refresh](0)
	sub := bus.Subscribe()
	svc := NewService(&Builder{Forecaster: mockForecast()}, monthOfUsage(t), bus)

	_, ok := svc.Current()
	assert.False(t, ok)

	v, stored := svc.SetWindow(model.Window14d)
	require.True(t, stored)
	cur, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, v.RunID, cur.RunID)
	assert.Equal(t, model.Window14d, cur.Range)
	assert.Len(t, cur.Daily, 15)

	select {
	case ev := <-sub:
		assert.Equal(t, uint64(1), ev.Generation)
		assert.Equal(t, v.RunID, ev.RunID)
		assert.Equal(t, model.Window14d, ev.Range)
	case <-time.After(time.Second):
		t.Fatal("refresh not published")
	}
}

func TestService_LastWriteWins(t *testing.T) {
	gate := &gateForecaster{hold: 8, entered: make(chan struct{}), release: make(chan struct{})}
	bus := eventbus.New[Refresh](4)
	sub := bus.Subscribe()
	svc := NewService(&Builder{Forecaster: gate}, monthOfUsage(t), bus)

	type result struct {
		view   View
		stored bool
	}
	slow := make(chan result, 1)
	go func() {
		v, ok := svc.SetWindow(model.Window7d)
		slow <- result{v, ok}
	}()
	<-gate.entered

	fast, stored := svc.SetWindow(model.Window30d)
	require.True(t, stored)
	close(gate.release)

	r := <-slow
	assert.False(t, r.stored, "older generation must not replace the newer view")
	assert.Equal(t, model.Window7d, r.view.Range)

	cur, _ := svc.Current()
	assert.Equal(t, fast.RunID, cur.RunID)
	assert.Equal(t, model.Window30d, cur.Range)
	assert.Equal(t, uint64(2), svc.Generation())

	ev := <-sub
	assert.Equal(t, uint64(2), ev.Generation)
	select {
	case extra := <-sub:
		t.Fatalf("stale view published: %+v", extra)
	default:
	}
}

func TestService_ViewDoesNotStore(t *testing.T) {
	svc := NewService(nil, monthOfUsage(t), nil)
	v := svc.View(model.Window7d)
	assert.Len(t, v.Daily, 8)
	_, ok := svc.Current()
	assert.False(t, ok)
	assert.Len(t, svc.Bundle().DailyUsage, 30)
}
