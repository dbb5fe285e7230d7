package assert

import (
	"fmt"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// recorder is a Tester that remembers whether an assertion failed. Fatalf
// does not stop the calling goroutine.
type recorder struct {
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recorder) failed() bool { return len(r.failures) > 0 }

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want, got error
		wantFail  bool
	}{
		"same":           {want: errors.ErrEmpty, got: errors.ErrEmpty},
		"wrapped":        {want: errors.ErrEmpty, got: errors.Wrap(errors.ErrEmpty, "lease id")},
		"both nil":       {want: nil, got: nil},
		"nil want":       {want: nil, got: errors.ErrEmpty, wantFail: true},
		"nil got":        {want: errors.ErrEmpty, got: nil, wantFail: true},
		"different kind": {want: errors.ErrState, got: errors.ErrEmpty, wantFail: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var r recorder
			IsErr(&r, tc.want, tc.got)
			if r.failed() != tc.wantFail {
				t.Fatalf("want fail %v, got %q", tc.wantFail, r.failures)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	amount := errors.Field("Amount", errors.ErrAmount, "must be positive")
	both := errors.Append(amount, errors.Field("LeaseID", errors.ErrInput, "empty"))
	twice := errors.Append(amount, errors.Field("Amount", errors.ErrOverflow, "too big"))

	cases := map[string]struct {
		err      error
		field    string
		want     *errors.Error
		wantFail bool
	}{
		"single":           {err: amount, field: "Amount", want: errors.ErrAmount},
		"one of many":      {err: both, field: "LeaseID", want: errors.ErrInput},
		"wrong kind":       {err: both, field: "LeaseID", want: errors.ErrEmpty, wantFail: true},
		"missing":          {err: amount, field: "LeaseID", want: errors.ErrInput, wantFail: true},
		"none expected":    {err: amount, field: "LeaseID", want: nil},
		"unexpected":       {err: amount, field: "Amount", want: nil, wantFail: true},
		"nil error":        {err: nil, field: "Amount", want: nil},
		"reported twice":   {err: twice, field: "Amount", want: errors.ErrAmount, wantFail: true},
		"wrapped in error": {err: errors.Wrap(both, "deposit"), field: "Amount", want: errors.ErrAmount},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var r recorder
			FieldError(&r, tc.err, tc.field, tc.want)
			if r.failed() != tc.wantFail {
				t.Fatalf("want fail %v, got %q", tc.wantFail, r.failures)
			}
		})
	}
}

func TestNilEqualPanics(t *testing.T) {
	var (
		r       recorder
		nilPtr  *int
		nilErr  error
		nilList []string
	)
	Nil(&r, nil)
	Nil(&r, nilPtr)
	Nil(&r, nilErr)
	Nil(&r, nilList)
	Equal(&r, []byte("a"), []byte("a"))
	Panics(&r, func() { panic("boom") })
	if r.failed() {
		t.Fatalf("unexpected failures: %q", r.failures)
	}

	Nil(&r, 0)
	Nil(&r, errors.ErrEmpty)
	Equal(&r, int32(1), int64(1))
	Panics(&r, func() {})
	if len(r.failures) != 4 {
		t.Fatalf("want 4 failures, got %q", r.failures)
	}
}
