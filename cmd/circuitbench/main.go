// Command circuitbench sweeps synthetic circuit sizes, compiling and
// QAP-converting each concurrently (disjoint buffers, no coordination
// needed per spec's concurrency model), and renders an HTML timing
// chart with go-echarts.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"r1csqap/flatcode"
	"r1csqap/prof"
	"r1csqap/qap"
	"r1csqap/r1cs"
)

type sweepPoint struct {
	chainLen   int
	compileUS  int64
	assignUS   int64
	qapUS      int64
}

// chainCircuit builds a flatcode chain t_1=x*x; t_2=t_1+x; ...
// t_n=t_{n-1}+x, producing a circuit with n rows.
func chainCircuit(n int) (inputs []string, code flatcode.Flatcode) {
	inputs = []string{"x"}
	code = make(flatcode.Flatcode, 0, n)
	code = append(code, flatcode.Operation{
		Target: "t1", Operator: flatcode.OpMultiply,
		Left: flatcode.Identifier("x"), Right: flatcode.Identifier("x"),
	})
	for i := 2; i <= n; i++ {
		code = append(code, flatcode.Operation{
			Target:   fmt.Sprintf("t%d", i),
			Operator: flatcode.OpPlus,
			Left:     flatcode.Identifier(fmt.Sprintf("t%d", i-1)),
			Right:    flatcode.Identifier("x"),
		})
	}
	return inputs, code
}

// phaseLabel tags a prof.Track entry with the chain length it belongs to,
// since all sweep points share the one process-wide prof record.
func phaseLabel(phase string, n int) string { return fmt.Sprintf("%s/%d", phase, n) }

// runSweepPoint times each pipeline phase via prof.Track. prof's record is
// process-global and mutex-protected, so concurrent Track calls across sweep
// points are safe, but SnapshotAndReset is not called here: draining it
// mid-sweep would also drop entries goroutines in flight haven't logged yet.
// main collects everything in one snapshot after wg.Wait().
func runSweepPoint(n int) {
	inputs, code := chainCircuit(n)

	t0 := time.Now()
	r, err := r1cs.Compile(inputs, code)
	prof.Track(t0, phaseLabel("compile", n))
	if err != nil {
		log.Fatalf("compile n=%d: %v", n, err)
	}

	t1 := time.Now()
	assignment, err := r1cs.Assign(inputs, []float64{2.0}, code)
	prof.Track(t1, phaseLabel("assign", n))
	if err != nil {
		log.Fatalf("assign n=%d: %v", n, err)
	}

	t2 := time.Now()
	q := qap.FromR1CS(r.A, r.B, r.C)
	_ = qap.Solve(assignment, q)
	prof.Track(t2, phaseLabel("qap", n))
}

func main() {
	maxLen := flag.Int("max", 64, "largest chain length to sweep")
	step := flag.Int("step", 8, "chain length step")
	outPath := flag.String("out", "circuitbench.html", "output HTML path")
	flag.Parse()

	var sizes []int
	for n := *step; n <= *maxLen; n += *step {
		sizes = append(sizes, n)
	}

	var wg sync.WaitGroup
	for _, n := range sizes {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			runSweepPoint(n)
		}(n)
	}
	wg.Wait()

	entries := prof.SnapshotAndReset()
	byLabel := make(map[string]int64, len(entries))
	for _, e := range entries {
		byLabel[e.Label] = e.Dur.Microseconds()
	}

	points := make([]sweepPoint, len(sizes))
	for i, n := range sizes {
		points[i] = sweepPoint{
			chainLen:  n,
			compileUS: byLabel[phaseLabel("compile", n)],
			assignUS:  byLabel[phaseLabel("assign", n)],
			qapUS:     byLabel[phaseLabel("qap", n)],
		}
	}

	log.Printf("[circuitbench] swept %d circuit sizes up to %d rows", len(points), *maxLen)

	page := components.NewPage().SetPageTitle("flatcode compile/QAP timings")
	page.AddCharts(newTimingChart(points))

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("create %s: %v", *outPath, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render chart: %v", err)
	}
}

func newTimingChart(points []sweepPoint) *charts.Line {
	xLabels := make([]string, len(points))
	compile := make([]opts.LineData, len(points))
	assign := make([]opts.LineData, len(points))
	qapT := make([]opts.LineData, len(points))
	for i, p := range points {
		xLabels[i] = fmt.Sprintf("%d", p.chainLen)
		compile[i] = opts.LineData{Value: p.compileUS}
		assign[i] = opts.LineData{Value: p.assignUS}
		qapT[i] = opts.LineData{Value: p.qapUS}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Compile / assign / QAP timings by chain length"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "550px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
	)
	line.SetXAxis(xLabels).
		AddSeries("compile (us)", compile).
		AddSeries("assign (us)", assign).
		AddSeries("qap (us)", qapT)
	return line
}
