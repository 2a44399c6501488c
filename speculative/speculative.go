/*
Package speculative provides functions for expressing parallel
algorithms, similar to the functions in package parallel, except that
the implementations here terminate early when they can.

And terminates early if the final return value is known early (if any
of the predicates invoked in parallel returns false).

Additionally, And also handles panics, similar to the functions in
package parallel. However, a panic may not propagate to the invoking
goroutine in case execution terminates early because of a known return
value. See the function's documentation for more precise details of
the semantics.

And does not stop the execution of invoked predicates that may still
be running in parallel in case of early termination. To ensure that
compute resources are freed up in such cases, user programs need to
use some other safe form of communication to gracefully stop their
execution, for example the cancelation feature of the context package
of Go's standard library. (Any such additional communication is likely
to add additional performance overhead, which is why this is not done
by default.)
*/
package speculative

import (
	"sync"

	"github.com/parsortlab/parsort"
)

/*
And receives zero or more Predicate functions and executes them in
parallel.

Each predicate is invoked in its own goroutine, and And returns true
if all of them return true; or And returns false when at least one of
them returns false, without waiting for the other predicates to
terminate.

If one or more predicates panic, the corresponding goroutines recover
the panics, and And may eventually panic with the left-most recovered
panic value. If both panics occur and false values are returned, then
the left-most of these events takes precedence.
*/
func And(predicates ...parsort.Predicate) (result bool) {
	switch len(predicates) {
	case 0:
		return true
	case 1:
		return predicates[0]()
	}
	var b0, b1 bool
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	switch len(predicates) {
	case 2:
		go func() {
			defer func() {
				wg.Done()
				p = recover()
			}()
			b1 = predicates[1]()
		}()
		b0 = predicates[0]()
	default:
		half := len(predicates) / 2
		go func() {
			defer func() {
				wg.Done()
				p = recover()
			}()
			b1 = And(predicates[half:]...)
		}()
		b0 = And(predicates[:half]...)
	}
	if !b0 {
		return false
	}
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return b1
}
