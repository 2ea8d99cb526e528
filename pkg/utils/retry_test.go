package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func fastRetry(attempts int) utils.RetryConfig {
	return utils.RetryConfig{
		MaxAttempts:  attempts,
		InitialDelay: time.Microsecond,
		Multiplier:   2,
		Jitter:       0.3,
	}
}

func TestRetry_SucceedsAfterFailure(t *testing.T) {
	calls := 0
	err := utils.Retry(fastRetry(3), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetry_Exhausted(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := utils.Retry(fastRetry(3), func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestRetry_PermanentErrorStopsEarly(t *testing.T) {
	permanent := errors.New("not found")
	calls := 0
	err := utils.Retry(fastRetry(5), func() error {
		calls++
		return permanent
	}, permanent)
	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}
