package interceptor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wireframe-rpc/wireframe/interceptor"
)

func TestChainOrdering(t *testing.T) {
	var order []string
	mk := func(name string) interceptor.Interceptor {
		return interceptor.Func(func(ctx context.Context, method string, req any, next interceptor.Handler) (any, error) {
			order = append(order, name+":before")
			resp, err := next(ctx, req)
			order = append(order, name+":after")
			return resp, err
		})
	}
	chain := interceptor.Chain(mk("a"), mk("b"))
	_, err := chain.Intercept(context.Background(), "/m", nil, func(ctx context.Context, req any) (any, error) {
		order = append(order, "handler")
		return nil, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a:before", "b:before", "handler", "b:after", "a:after"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestRecoveryConvertsPanic(t *testing.T) {
	r := interceptor.Recovery(nil)
	_, err := r.Intercept(context.Background(), "/m", nil, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected panic to be converted to an error")
	}
}

func TestMetricsCountsOutcomes(t *testing.T) {
	m := &interceptor.Metrics{}
	ic := m.Interceptor()
	_, _ = ic.Intercept(context.Background(), "/m", nil, func(ctx context.Context, req any) (any, error) {
		return nil, nil
	})
	_, _ = ic.Intercept(context.Background(), "/m", nil, func(ctx context.Context, req any) (any, error) {
		return nil, errors.New("boom")
	})
	if m.RequestCount.Load() != 2 {
		t.Fatalf("RequestCount = %d", m.RequestCount.Load())
	}
	if m.SuccessCount.Load() != 1 || m.FailureCount.Load() != 1 {
		t.Fatalf("SuccessCount=%d FailureCount=%d", m.SuccessCount.Load(), m.FailureCount.Load())
	}
}
