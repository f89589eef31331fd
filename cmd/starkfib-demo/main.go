// Command starkfib-demo builds a Fibonacci STARK proof end to end and
// verifies it, printing the trace table and the pipeline's progress along
// the way.
package main

import (
	"fmt"
	"os"

	"github.com/starkfib/stark-fib/pkg/starkfib"
)

func main() {
	field := starkfib.DefaultPrimeField
	trace := starkfib.FibonacciTrace(8, field.NewElementFromInt64(1))
	printTrace(trace)

	config := starkfib.DefaultConfig()

	logStderr("building proof...")
	proof, err := starkfib.BuildProof(trace, config)
	if err != nil {
		fatal(fmt.Sprintf("build proof failed: %v", err))
	}
	logStderr(fmt.Sprintf("committed to extended trace: root=%d, extended size=%d", proof.TraceCommitment, proof.ExtendedSize))

	logStderr("sampling...")
	proof, err = starkfib.PopulateSampling(proof, trace, config)
	if err != nil {
		fatal(fmt.Sprintf("populate sampling failed: %v", err))
	}
	logStderr(fmt.Sprintf("sampled %d rows: %v", len(proof.Sampling.SampleIndices), proof.Sampling.SampleIndices))

	logStderr("verifying...")
	if !starkfib.Verify(proof) {
		fatal("proof is INVALID")
	}

	fmt.Println("proof is VALID")
}

func printTrace(trace [][]*starkfib.FieldElement) {
	fmt.Println("step | F(n-2) | F(n-1) | F(n)")
	for i, row := range trace {
		fmt.Printf("%4d | %6s | %6s | %6s\n", i, row[0], row[1], row[2])
	}
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "starkfib-demo:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
