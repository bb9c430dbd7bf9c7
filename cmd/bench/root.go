package bench

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cmdUtil "serde-api/cmd/util"
	"serde-api/lib/serde"
)

var (
	BenchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Benchmark the JSON serializer locally",
		Long:    "Run serialize/deserialize benchmarks over a fixed payload suite and report latency percentiles. No server is required; the benchmark exercises the serializer in-process.",
		RunE:    run,
		PreRunE: processBenchConfig,
	}
	benchIterations = 50000
	benchSkip       = make([]string, 0)
	benchCSVPath    = ""
)

func init() {
	// add flags
	key := "iterations"
	BenchCmd.PersistentFlags().Int(key, 50000, cmdUtil.WrapString("Number of iterations per payload and operation"))
	key = "skip"
	BenchCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Payloads to skip (comma separated - e.g. large-list,tagged)"))
	key = "csv"
	BenchCmd.Flags().String(key, "", cmdUtil.WrapString("Optional path to save benchmark results as CSV"))
}

func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := cmdUtil.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	benchIterations = viper.GetInt("iterations")
	benchSkip = strings.Split(viper.GetString("skip"), ",")
	benchCSVPath = viper.GetString("csv")

	if benchIterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", benchIterations)
	}
	return nil
}

// benchPayload is one named benchmark input
type benchPayload struct {
	name  string
	value any
}

// benchPayloads builds the payload suite
func benchPayloads() []benchPayload {
	largeList := make([]any, 1024)
	for i := range largeList {
		largeList[i] = i
	}

	price, _ := decimal.NewFromString("1999.99")

	return []benchPayload{
		{"scalar", "just a string"},
		{"flat", map[string]any{"nome": "Maria", "idade": 25, "ativo": true}},
		{"nested", map[string]any{
			"user": map[string]any{
				"name":    "Carlos",
				"address": map[string]any{"city": "São Paulo", "zip": "01000-000"},
			},
			"scores": []any{1, 2, 3, 4, 5},
		}},
		{"large-list", largeList},
		{"tagged", map[string]any{
			"when":   time.Date(2023, 12, 25, 10, 30, 0, 0, time.UTC),
			"amount": price,
			"tags":   serde.NewSet("a", "b", "c"),
		}},
	}
}

func run(_ *cobra.Command, _ []string) error {

	fmt.Println("Benchmark tool for the serde JSON serializer")

	// Print configuration
	fmt.Println()
	fmt.Printf("Iterations: %d\n", benchIterations)
	fmt.Println()

	fmt.Println("starting benchmarks...")

	s := serde.NewJSONSerializer(serde.Compact, false)
	results := [][]string{{"payload", "operation", "ops", "mean_ns", "p50_ns", "p95_ns", "p99_ns", "ops_per_sec"}}

	for _, payload := range benchPayloads() {
		if shouldSkip(payload.name) {
			continue
		}

		// serialize
		serializeTimer := gometrics.NewTimer()
		for i := 0; i < benchIterations; i++ {
			start := time.Now()
			if _, err := s.Serialize(payload.value); err != nil {
				return fmt.Errorf("failed to serialize payload %s: %w", payload.name, err)
			}
			serializeTimer.UpdateSince(start)
		}
		printResult(payload.name+"/serialize", serializeTimer)
		results = append(results, csvRow(payload.name, "serialize", serializeTimer))

		// deserialize (over the pre-rendered text)
		text, err := s.Serialize(payload.value)
		if err != nil {
			return fmt.Errorf("failed to prepare payload %s: %w", payload.name, err)
		}
		deserializeTimer := gometrics.NewTimer()
		for i := 0; i < benchIterations; i++ {
			start := time.Now()
			if _, err := s.Deserialize(text); err != nil {
				return fmt.Errorf("failed to deserialize payload %s: %w", payload.name, err)
			}
			deserializeTimer.UpdateSince(start)
		}
		printResult(payload.name+"/deserialize", deserializeTimer)
		results = append(results, csvRow(payload.name, "deserialize", deserializeTimer))
	}

	// Optionally save results as CSV
	if benchCSVPath != "" {
		if err := writeCSV(benchCSVPath, results); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Printf("\nresults saved to %s\n", benchCSVPath)
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// shouldSkip checks whether a payload was excluded via the skip flag
func shouldSkip(name string) bool {
	return slices.Contains(benchSkip, name)
}

// printResult prints one timer in a human-readable form
func printResult(test string, timer gometrics.Timer) {
	mean := timer.Mean()
	percentiles := timer.Percentiles([]float64{0.5, 0.95, 0.99})
	opsPerSec := 1e9 / mean

	fmt.Printf("%-28s\t%s\t%.2f ops/sec\tp50: %s, p95: %s, p99: %s\n",
		test,
		formatNs(mean),
		opsPerSec,
		formatNs(percentiles[0]),
		formatNs(percentiles[1]),
		formatNs(percentiles[2]),
	)
}

// formatNs formats a duration in nanoseconds with appropriate units
func formatNs(ns float64) string {
	switch {
	case ns < 1000:
		return fmt.Sprintf("%.2f ns/op", ns)
	case ns < 1000000:
		return fmt.Sprintf("%.2f µs/op", ns/1000)
	case ns < 1000000000:
		return fmt.Sprintf("%.2f ms/op", ns/1000000)
	default:
		return fmt.Sprintf("%.2f s/op", ns/1000000000)
	}
}

// csvRow renders one timer as a CSV record
func csvRow(payload, operation string, timer gometrics.Timer) []string {
	percentiles := timer.Percentiles([]float64{0.5, 0.95, 0.99})
	return []string{
		payload,
		operation,
		strconv.FormatInt(timer.Count(), 10),
		strconv.FormatFloat(timer.Mean(), 'f', 2, 64),
		strconv.FormatFloat(percentiles[0], 'f', 2, 64),
		strconv.FormatFloat(percentiles[1], 'f', 2, 64),
		strconv.FormatFloat(percentiles[2], 'f', 2, 64),
		strconv.FormatFloat(1e9/timer.Mean(), 'f', 2, 64),
	}
}

// writeCSV saves the benchmark results to a file
func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	return w.WriteAll(records)
}
