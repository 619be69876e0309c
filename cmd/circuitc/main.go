// Command circuitc compiles a JSON circuit description into an R1CS,
// witnesses it, converts it to a QAP, and prints the divisor check.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"r1csqap/fixture"
	"r1csqap/host"
	"r1csqap/qap"
	"r1csqap/r1cs"
)

func main() {
	path := flag.String("circuit", "", "path to a JSON circuit description")
	outPath := flag.String("out", "", "optional path to write the full compiled output as JSON")
	flag.Parse()

	if *path == "" {
		log.Fatal("-circuit is required")
	}

	circ, err := host.LoadFile(*path)
	if err != nil {
		log.Fatalf("load circuit: %v", err)
	}
	inputs, code, inputVars, err := host.Decode(circ)
	if err != nil {
		log.Fatalf("decode circuit: %v", err)
	}

	r, err := r1cs.Compile(inputs, code)
	if err != nil {
		log.Fatalf("compile r1cs: %v", err)
	}
	assignment, err := r1cs.Assign(inputs, inputVars, code)
	if err != nil {
		log.Fatalf("assign witness: %v", err)
	}

	q := qap.FromR1CS(r.A, r.B, r.C)
	sol := qap.Solve(assignment, q)
	h, rem, err := qap.Divisor(sol, q.Z)
	if err != nil {
		log.Fatalf("compute divisor: %v", err)
	}

	digest := fixture.Matrices(r.A, r.B, r.C, assignment)
	log.Printf("[circuitc] rows=%d cols=%d fixture=%s", len(r.A), len(r.Placement), digest)

	result := struct {
		Placement  []string    `json:"placement"`
		A          [][]float64 `json:"a"`
		B          [][]float64 `json:"b"`
		C          [][]float64 `json:"c"`
		Assignment []float64   `json:"assignment"`
		H          []float64   `json:"h"`
		Remainder  []float64   `json:"remainder"`
		Fixture    string      `json:"fixture"`
	}{
		Placement:  r.Placement,
		A:          r.A,
		B:          r.B,
		C:          r.C,
		Assignment: assignment,
		H:          h,
		Remainder:  rem,
		Fixture:    digest.String(),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, data, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		return
	}
	fmt.Println(string(data))
}
