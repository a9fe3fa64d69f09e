package engine

import (
	"sync"
	"testing"
	"time"
)

func TestMonotonicProviderMovesForward(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if got := t2.Sub(t1); got < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms between readings, got %v", got)
	}
}

func TestMockProviderHoldsUntilMoved(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	if got := mock.Now(); !got.Equal(epoch) {
		t.Errorf("Expected frozen start time %v, got %v", epoch, got)
	}
	if got := mock.Now(); !got.Equal(epoch) {
		t.Errorf("Expected repeated reads unchanged, got %v", got)
	}

	mock.Advance(250 * time.Millisecond)
	if got := mock.Now(); !got.Equal(at(250)) {
		t.Errorf("Expected %v after advance, got %v", at(250), got)
	}

	jump := epoch.Add(time.Hour)
	mock.SetTime(jump)
	if got := mock.Now(); !got.Equal(jump) {
		t.Errorf("Expected %v after SetTime, got %v", jump, got)
	}
}

func TestMockProviderConcurrentAccess(t *testing.T) {
	mock := NewMockTimeProvider(epoch)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := mock.Now(); !got.Equal(at(250)) {
		t.Errorf("Expected %v after 250 concurrent advances, got %v", at(250), got)
	}
}

func TestProvidersSatisfyInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
