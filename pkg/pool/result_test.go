package pool

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestResult_NotReadyBeforeCompletion(t *testing.T) {
	r := newResult()

	if r.Ready() {
		t.Error("Ready() should be false before completion")
	}
	if v, ok := r.Value(); ok || v != 0 {
		t.Errorf("Value() = (%d, %t), want (0, false)", v, ok)
	}
}

func TestResult_CompletePublishesOnce(t *testing.T) {
	r := newResult()
	r.complete(42)

	if !r.Ready() {
		t.Error("Ready() should be true after completion")
	}
	v, ok := r.Value()
	if !ok || v != 42 {
		t.Errorf("Value() = (%d, %t), want (42, true)", v, ok)
	}

	// The flag never flips back
	if !r.Ready() {
		t.Error("Ready() must stay true")
	}
}

func TestResult_WaitReturnsValue(t *testing.T) {
	r := newResult()
	go func() {
		time.Sleep(10 * time.Millisecond)
		r.complete(-3)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := r.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if v != -3 {
		t.Errorf("Wait() = %d, want -3", v)
	}
}

func TestResult_WaitHonorsContext(t *testing.T) {
	r := newResult()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := r.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want context.DeadlineExceeded", err)
	}
}
