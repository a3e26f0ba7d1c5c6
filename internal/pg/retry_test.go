package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type retryableErr struct{}

func (retryableErr) Error() string     { return "connection reset" }
func (retryableErr) SafeToRetry() bool { return true }

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(errors.New("syntax error")))
	assert.False(t, IsTransient(context.Canceled))
	assert.True(t, IsTransient(retryableErr{}))
}

func TestRetryRead(t *testing.T) {
	tests := []struct {
		name          string
		failures      int
		failWith      error
		expectedCalls int
		expectErr     bool
	}{
		{
			name:          "Succeeds first time",
			failures:      0,
			expectedCalls: 1,
		},
		{
			name:          "Retries transient failures",
			failures:      2,
			failWith:      retryableErr{},
			expectedCalls: 3,
		},
		{
			name:          "Gives up after retries",
			failures:      10,
			failWith:      retryableErr{},
			expectedCalls: 4,
			expectErr:     true,
		},
		{
			name:          "Does not retry permanent failures",
			failures:      10,
			failWith:      errors.New("permission denied"),
			expectedCalls: 1,
			expectErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			got, err := RetryRead(context.Background(), 3, func(ctx context.Context) (int, error) {
				calls++
				if calls <= tt.failures {
					return 0, tt.failWith
				}
				return 42, nil
			})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.failWith)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, got)
			}
		})
	}
}
