// Package tt supports table-driven tests with little boilerplate. A test
// calls Test with the function under test and a list of cases built with
// Args(...).Rets(...).
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

// Case describes one test case: arguments to pass and expected returns.
type Case struct {
	args []any
	rets []any
}

// Args starts a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets sets the expected return values and returns the case itself, so
// calls can be chained like Args(...).Rets(...).
func (c *Case) Rets(rets ...any) *Case {
	c.rets = rets
	return c
}

// Matcher wraps the Match method, for expected values that are not compared
// with reflect.DeepEqual.
type Matcher interface {
	// Match reports whether an actual return value is considered a match.
	Match(v any) bool
}

// Any matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(any) bool { return true }

// Test calls fn with the arguments of each case and checks the returned
// values against the expected ones, reporting mismatches via t.Errorf.
func Test(t *testing.T, fn any, cases ...*Case) {
	t.Helper()
	fnv := reflect.ValueOf(fn)
	for _, c := range cases {
		args := make([]reflect.Value, len(c.args))
		for i, arg := range c.args {
			args[i] = reflect.ValueOf(arg)
		}
		outs := fnv.Call(args)
		rets := make([]any, len(outs))
		for i, out := range outs {
			rets[i] = out.Interface()
		}
		if !match(c.rets, rets) {
			t.Errorf("%s(%s) -> %s, want %s",
				funcName(fnv), sprint(c.args), sprint(rets), sprint(c.rets))
		}
	}
}

func match(want, got []any) bool {
	if len(want) != len(got) {
		return false
	}
	for i, w := range want {
		if m, ok := w.(Matcher); ok {
			if !m.Match(got[i]) {
				return false
			}
		} else if !reflect.DeepEqual(w, got[i]) {
			return false
		}
	}
	return true
}

func funcName(fnv reflect.Value) string {
	f := runtime.FuncForPC(fnv.Pointer())
	if f == nil {
		return "<fn>"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func sprint(vals []any) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", v)
	}
	return sb.String()
}
