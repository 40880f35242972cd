package domain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureClass
	}{
		{
			name: "connection refused is retried",
			err: &UpstreamError{
				Platform: "lemlist",
				Op:       "list campaigns",
				Err:      &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
			},
			want: FailureTransient,
		},
		{
			name: "dns failure is retried",
			err: &UpstreamError{
				Platform: "expandi",
				Op:       "list leads",
				Err:      &net.DNSError{Err: "no such host", Name: "api.expandi.io"},
			},
			want: FailureTransient,
		},
		{
			name: "decode failure is retried",
			err: &UpstreamError{
				Platform: "lemlist",
				Op:       "list activities",
				Err:      fmt.Errorf("decode response: unexpected EOF"),
			},
			want: FailureTransient,
		},
		{
			name: "rate limited response is retried",
			err:  &UpstreamError{Platform: "lemlist", Op: "list activities", Status: 429},
			want: FailureTransient,
		},
		{
			name: "server error is retried",
			err:  &UpstreamError{Platform: "expandi", Op: "list campaigns", Status: 503},
			want: FailureTransient,
		},
		{
			name: "auth failure aborts",
			err:  &UpstreamError{Platform: "lemlist", Op: "list campaigns", Status: 401},
			want: FailurePermanent,
		},
		{
			name: "validation failure aborts",
			err:  &UpstreamError{Platform: "expandi", Op: "list leads", Status: 422},
			want: FailurePermanent,
		},
		{
			name: "deadline exceeded is retried",
			err:  context.DeadlineExceeded,
			want: FailureTransient,
		},
		{
			name: "plain error is retried",
			err:  errors.New("something broke"),
			want: FailureTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
