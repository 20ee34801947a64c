// Command grundy builds a taking game from a named family and prints
// its nimber.
//
// Usage:
//
//	grundy -game heap -n 12
//	grundy -game kayles -n 40
//	grundy -game rect -x 4 -y 4
//	grundy -game cube -dim 3 -n 2
//	grundy -game kayles -upto 20 -stats
//	grundy -game tetrahedron -dim 10 -timeout 30s -show
//
// The nimber is printed on stdout. With -upto, the family is evaluated
// for every size 0..N on one shared cache, one line per size. With
// -timeout, a timer flips the evaluator's cancel flag; a cancelled run
// prints "cancelled" and exits non-zero, as does any input rejection.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/grundy/builder"
	"github.com/katalvlaran/grundy/nimber"
)

func main() {
	var (
		family  = flag.String("game", "", "family: heap | kayles | rect | triangle | cube | tetrahedron")
		n       = flag.Int("n", 0, "size (heap, kayles, triangle side, cube side)")
		x       = flag.Int("x", 0, "rect width")
		y       = flag.Int("y", 0, "rect height")
		dim     = flag.Int("dim", 0, "dimension (cube, tetrahedron)")
		upto    = flag.Int("upto", -1, "evaluate the family for every size 0..N on one cache")
		stats   = flag.Bool("stats", false, "print the cache size after each evaluation")
		show    = flag.Bool("show", false, "print the canonical position(s) before evaluating")
		timeout = flag.Duration("timeout", 0, "cancel the evaluation after this long (0 = no limit)")
	)
	flag.Parse()

	eval := nimber.New()
	if *timeout > 0 {
		timer := time.AfterFunc(*timeout, eval.CancelFlag().Cancel)
		defer timer.Stop()
	}

	if *upto >= 0 {
		os.Exit(runSequence(eval, *family, *upto, *stats))
	}
	os.Exit(runOnce(eval, *family, *n, *x, *y, *dim, *show, *stats))
}

// runOnce evaluates a single family instance.
func runOnce(eval *nimber.Evaluator, family string, n, x, y, dim int, show, stats bool) int {
	b, err := selectFamily(family, n, x, y, dim)
	if err != nil {
		fmt.Fprintln(os.Stderr, "grundy:", err)
		return 1
	}
	parts, err := b.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "grundy:", err)
		return 1
	}
	if show {
		for _, p := range parts {
			fmt.Print(p)
		}
	}

	value, err := eval.NimberOfComponents(parts)
	if err != nil {
		return reportFailure(err)
	}
	fmt.Println(value)
	if stats {
		fmt.Println("cache size", eval.CacheSize())
	}
	return 0
}

// runSequence evaluates sizes 0..limit of a size-parameterized family
// on one shared cache, one "size:nimber" line per size.
func runSequence(eval *nimber.Evaluator, family string, limit int, stats bool) int {
	for size := 0; size <= limit; size++ {
		b, err := selectFamily(family, size, size, size, size)
		if err != nil {
			fmt.Fprintln(os.Stderr, "grundy:", err)
			return 1
		}
		parts, err := b.Build()
		if err != nil {
			fmt.Fprintln(os.Stderr, "grundy:", err)
			return 1
		}
		value, err := eval.NimberOfComponents(parts)
		if err != nil {
			return reportFailure(err)
		}
		fmt.Printf("%d:%d\n", size, value)
		if stats {
			fmt.Println("cache size", eval.CacheSize())
		}
	}
	return 0
}

// reportFailure maps an evaluation error onto output and exit code.
func reportFailure(err error) int {
	if errors.Is(err, nimber.ErrCancelled) {
		fmt.Println("cancelled")
		return 1
	}
	fmt.Fprintln(os.Stderr, "grundy:", err)
	return 1
}

// selectFamily maps the flag set onto a builder.
func selectFamily(family string, n, x, y, dim int) (builder.Builder, error) {
	switch family {
	case "heap":
		return builder.Heap(n), nil
	case "kayles":
		return builder.Kayles(n), nil
	case "rect":
		return builder.Rect(x, y), nil
	case "triangle":
		return builder.Triangle(n), nil
	case "cube":
		return builder.HyperCube(dim, n), nil
	case "tetrahedron":
		return builder.HyperTetrahedron(dim), nil
	case "":
		return builder.Builder{}, errors.New("missing -game flag")
	default:
		return builder.Builder{}, fmt.Errorf("unknown game family %q", family)
	}
}
