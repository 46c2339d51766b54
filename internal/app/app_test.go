package app

import (
	"errors"
	"testing"
)

type stubCloser struct {
	err    error
	closed bool
}

func (c *stubCloser) Close() error {
	c.closed = true
	return c.err
}

func TestCloseInto(t *testing.T) {
	runErr := errors.New("run failed")
	closeErr := errors.New("db locked")

	tests := []struct {
		name     string
		err      error
		closeErr error
		wantNil  bool
		wantIs   []error
	}{
		{"both nil", nil, nil, true, nil},
		{"run error only", runErr, nil, false, []error{runErr}},
		{"close error only", nil, closeErr, false, []error{closeErr}},
		{"both", runErr, closeErr, false, []error{runErr, closeErr}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &stubCloser{err: tt.closeErr}
			got := closeInto(tt.err, c)
			if !c.closed {
				t.Fatalf("closer was not closed")
			}
			if tt.wantNil != (got == nil) {
				t.Fatalf("closeInto = %v, want nil=%v", got, tt.wantNil)
			}
			for _, want := range tt.wantIs {
				if !errors.Is(got, want) {
					t.Fatalf("closeInto = %v, want it to wrap %v", got, want)
				}
			}
		})
	}
}

func TestWithEnv_ReturnsCallbackErrorAndCloses(t *testing.T) {
	opts := testOptions(t)
	sentinel := errors.New("callback failed")

	var seen *Env
	err := WithEnv(opts, func(env *Env) error {
		seen = env
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("WithEnv = %v, want callback error", err)
	}
	if seen == nil {
		t.Fatalf("callback was not called")
	}

	// The favorites database is released, so a second Env can open it.
	if err := WithEnv(opts, func(*Env) error { return nil }); err != nil {
		t.Fatalf("second WithEnv: %v", err)
	}
}
