// tether-bench measures throughput of the tether library's hot paths:
// delegated reads, splices with observer fan-out, and content swaps.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/phroun/tether"
)

const (
	elementCount  = 1_000_000
	readOps       = 5_000_000
	spliceOps     = 200_000
	swapOps       = 100_000
	observerCount = 8
	fanoutOps     = 100_000
)

type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Millisecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Millisecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Millisecond))
}

// countingObserver tallies notifications so fan-out work is not elided.
type countingObserver struct {
	wills int
	dids  int
}

func (c *countingObserver) ArrayWillChange(_ tether.Sequence[int], start, removed, added int) {
	c.wills++
}

func (c *countingObserver) ArrayDidChange(_ tether.Sequence[int], start, removed, added int) {
	c.dids++
}

func main() {
	fmt.Println("Tether Benchmark")
	fmt.Println("================")
	fmt.Printf("Elements: %d\n", elementCount)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Println()

	var results []BenchResult
	results = append(results, benchSetup())
	results = append(results, benchReads())
	results = append(results, benchSplices())
	results = append(results, benchSwaps())
	results = append(results, benchFanout())

	fmt.Println()
	fmt.Println("Results")
	fmt.Println("-------")
	for _, r := range results {
		fmt.Println(r)
	}
}

func newLargeProxy() (*tether.Array[int], *tether.Proxy[int]) {
	elems := make([]int, elementCount)
	for i := range elems {
		elems[i] = i
	}
	content := tether.NewArray(elems...)
	proxy, err := tether.NewProxy[int](content)
	if err != nil {
		panic(err)
	}
	return content, proxy
}

func benchSetup() BenchResult {
	start := time.Now()
	_, proxy := newLargeProxy()
	d := time.Since(start)
	return BenchResult{
		Name:     "Build content and bind proxy",
		Duration: d,
		Extra:    fmt.Sprintf("len=%d", proxy.Len()),
	}
}

func benchReads() BenchResult {
	_, proxy := newLargeProxy()

	var sum int
	start := time.Now()
	for i := 0; i < readOps; i++ {
		v, _ := proxy.ObjectAt(i % elementCount)
		sum += v
	}
	d := time.Since(start)

	return BenchResult{
		Name:     "Delegated reads (ObjectAt)",
		Duration: d,
		Ops:      readOps,
		Extra:    fmt.Sprintf("checksum=%d", sum),
	}
}

func benchSplices() BenchResult {
	_, proxy := newLargeProxy()
	obs := &countingObserver{}
	proxy.AddArrayObserver(obs)

	insert := []int{0}
	start := time.Now()
	for i := 0; i < spliceOps; i++ {
		if err := proxy.Replace(i%elementCount, 1, insert); err != nil {
			panic(err)
		}
	}
	d := time.Since(start)

	return BenchResult{
		Name:     "Single-element splices (Replace)",
		Duration: d,
		Ops:      spliceOps,
		Extra:    fmt.Sprintf("forwarded=%d", obs.dids),
	}
}

func benchSwaps() BenchResult {
	a := tether.NewArray(1, 2, 3)
	b := tether.NewArray(4, 5)
	proxy, err := tether.NewProxy[int](a)
	if err != nil {
		panic(err)
	}
	obs := &countingObserver{}
	proxy.AddArrayObserver(obs)

	start := time.Now()
	for i := 0; i < swapOps; i++ {
		next := tether.Mutable[int](a)
		if i%2 == 0 {
			next = b
		}
		if err := proxy.SetContent(next); err != nil {
			panic(err)
		}
	}
	d := time.Since(start)

	return BenchResult{
		Name:     "Content swaps (SetContent)",
		Duration: d,
		Ops:      swapOps,
		Extra:    fmt.Sprintf("brackets=%d", obs.dids),
	}
}

func benchFanout() BenchResult {
	content := tether.NewArray(make([]int, 1024)...)
	proxy, err := tether.NewProxy[int](content)
	if err != nil {
		panic(err)
	}

	observers := make([]*countingObserver, observerCount)
	for i := range observers {
		observers[i] = &countingObserver{}
		proxy.AddArrayObserver(observers[i])
	}

	insert := []int{7}
	start := time.Now()
	for i := 0; i < fanoutOps; i++ {
		if err := content.Replace(i%1024, 1, insert); err != nil {
			panic(err)
		}
	}
	d := time.Since(start)

	var delivered int
	for _, o := range observers {
		delivered += o.wills + o.dids
	}

	return BenchResult{
		Name:     fmt.Sprintf("Forward fan-out (%d observers)", observerCount),
		Duration: d,
		Ops:      fanoutOps,
		Extra:    fmt.Sprintf("delivered=%d", delivered),
	}
}
