package fault_test

import (
	"errors"
	"testing"

	"importflow/internal/fault"
)

func TestWrap(t *testing.T) {
	err := fault.Wrap(fault.Precondition, "send to QF", "documents missing")
	if !errors.Is(err, fault.Precondition) {
		t.Fatalf("wrapped error lost its marker: %v", err)
	}
	if got := err.Error(); got != "precondition error: send to QF: documents missing" {
		t.Fatalf("message = %q", got)
	}

	if err := fault.Wrap(fault.Authorization, "", ""); err != fault.Authorization {
		t.Errorf("empty wrap should return the bare marker, got %v", err)
	}
	if err := fault.Wrap(nil, "act", "detail"); !errors.Is(err, fault.Validation) {
		t.Errorf("nil marker should default to validation, got %v", err)
	}
}

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fault.Wrap(fault.Validation, "a", "b"), "validation"},
		{fault.Wrap(fault.Precondition, "a", "b"), "precondition"},
		{fault.Wrap(fault.Authorization, "a", "b"), "authorization"},
		{errors.New("plain"), ""},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := fault.Kind(tc.err); got != tc.want {
			t.Errorf("Kind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
