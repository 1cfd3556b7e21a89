package ui

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUpdateSenderNonBlocking(t *testing.T) {
	msgChan := make(chan tea.Msg, 10)
	sender := NewUpdateSender(msgChan, zap.NewNop())
	defer sender.Close()

	for i := 0; i < 10; i++ {
		assert.True(t, sender.SendUpdate(SnapshotMsg{}))
	}

	start := time.Now()
	for i := 0; i < 100; i++ {
		assert.False(t, sender.SendUpdate(SnapshotMsg{}))
	}
	elapsed := time.Since(start)

	if elapsed > 100*time.Millisecond {
		t.Errorf("SendUpdate blocked for %v, expected non-blocking", elapsed)
	}

	sent, dropped := sender.GetStats()
	assert.Equal(t, uint64(10), sent)
	assert.Equal(t, uint64(100), dropped)
}

func TestUpdateSenderConcurrent(t *testing.T) {
	msgChan := make(chan tea.Msg, 100)
	sender := NewUpdateSender(msgChan, zap.NewNop())
	defer sender.Close()

	var wg sync.WaitGroup
	numGoroutines := 10
	messagesPerGoroutine := 100

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				sender.SendUpdate(ErrorMsg{Title: "test"})
			}
		}()
	}

	wg.Wait()

	sent, dropped := sender.GetStats()
	assert.Equal(t, uint64(numGoroutines*messagesPerGoroutine), sent+dropped)
	assert.Equal(t, uint64(100), sent)
}

func TestListenBus(t *testing.T) {
	bus := make(chan tea.Msg, 1)
	bus <- EntryAmountChangedMsg{WalletID: 3, Text: "1.5"}

	msg := ListenBus(bus)()
	assert.Equal(t, EntryAmountChangedMsg{WalletID: 3, Text: "1.5"}, msg)

	close(bus)
	assert.Nil(t, ListenBus(bus)())
}

func TestRouteString(t *testing.T) {
	assert.Equal(t, "dashboard", RouteDashboard.String())
	assert.Equal(t, "token_detail", RouteTokenDetail.String())
	assert.Equal(t, "unknown", Route(99).String())
}
