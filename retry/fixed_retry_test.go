package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Fixed_Do_count(t *testing.T) {
	err := fmt.Errorf("err")
	count := 0

	r := makeFixedRetry()
	err2 := r.Do(context.Background(), 2, "testFnName", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		return err, Continue
	})

	assert.True(t, errors.Is(err, err2))
	assert.Equal(t, 2, count)
}

func Test_Fixed_Do_returns_last_error(t *testing.T) {
	err1 := fmt.Errorf("err1")
	err2 := fmt.Errorf("err2")
	count := 0

	r := makeFixedRetry()
	err3 := r.Do(context.Background(), 2, "testFnName", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		if count == 1 {
			return err1, Continue
		}
		return err2, Continue
	})

	assert.True(t, errors.Is(err2, err3))
	assert.Equal(t, 2, count)
}

func Test_Fixed_Do_early_exit(t *testing.T) {
	err1 := fmt.Errorf("err1")
	err2 := fmt.Errorf("err2")
	count := 0

	r := makeFixedRetry()
	err3 := r.Do(context.Background(), 10, "testFnName", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		if count == 2 {
			return err1, StopNow
		}
		return err2, Continue
	})

	assert.True(t, errors.Is(err1, err3))
	assert.Equal(t, 2, count)
}

func Test_Fixed_Do_0(t *testing.T) {
	count := 0

	r := makeFixedRetry()
	err := r.Do(context.Background(), 0, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		assert.Fail(t, "Should never run")
		return nil, Continue
	})

	assert.Error(t, err)
	assert.Equal(t, 0, count)
}

func Test_Fixed_Do_constant_delay(t *testing.T) {
	delay := 30 * time.Millisecond
	r := NewFixed(WithDelay(delay)).(*fixedRetry)

	count := 0
	start := time.Now()
	_ = r.Do(context.Background(), 3, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		return fmt.Errorf("err"), Continue
	})
	elapsed := time.Since(start)

	// 3 attempts, 2 delays; no delay after the final failure
	assert.Equal(t, 3, count)
	assert.GreaterOrEqual(t, elapsed, 2*delay)
	assert.Less(t, elapsed, 4*delay)
}

func Test_Fixed_Do_cancel_during_delay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	r := NewFixed(WithDelay(1 * time.Second)).(*fixedRetry)

	count := 0
	done := make(chan error, 1)
	go func() {
		done <- r.Do(ctx, 5, "testFnName", func(attempt int) (error, ExitStrategy) {
			count++
			return fmt.Errorf("err"), Continue
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	err := <-done
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, count)
}

func Test_Fixed_Do_cancel_before_first_attempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	r := makeFixedRetry()
	err := r.Do(ctx, 5, "testFnName", func(attempt int) (error, ExitStrategy) {
		count++
		return nil, StopNow
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, count)
}

func makeFixedRetry() *fixedRetry {
	return NewFixed(
		WithDelay(0 * time.Millisecond),
	).(*fixedRetry)
}
