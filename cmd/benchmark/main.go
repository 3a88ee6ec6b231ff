package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	defaultExecutablePath         = "../../bin/z3fp"
	defaultBenchmarkDirectory     = "../../test/benchmarks/"
	statPrefix                    = "BRUNCH_STAT"
	MB                    float32 = 1024
)

type BenchmarkResult struct {
	Engine        string
	Benchmark     string
	Result        string
	Query         float64 // Seconds, as reported by the front end
	Duration      int64   // Wall clock of the whole front end, in ms
	Memory        float32
	CpuPercentage int64
}

func main() {
	executablePtr := flag.String("bin", defaultExecutablePath, "Path to the z3fp executable")
	directoryPtr := flag.String("dir", defaultBenchmarkDirectory, "Directory holding the .smt2 benchmarks")
	enginesPtr := flag.String("engines", "spacer,pdr", "Comma separated list of engines to compare")
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file to write")
	flag.Parse()

	benchmarks := getBenchmarks(*directoryPtr)
	engines := lo.Filter(strings.Split(*enginesPtr, ","), func(engine string, _ int) bool { return engine != "" })
	results := make([]BenchmarkResult, 0, len(benchmarks)*len(engines))

	for _, benchmark := range benchmarks {
		for _, engine := range engines {
			fmt.Printf("Benchmarking \"%v\" with engine \"%v\"\n", benchmark, engine)
			results = append(results, measure(*executablePtr, engine, benchmark))
		}
	}

	toCsv(*outPtr, results)
}

func getBenchmarks(directory string) []string {
	files, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	return lo.FilterMap(files, func(file os.DirEntry, _ int) (string, bool) {
		return filepath.Join(directory, file.Name()), !file.IsDir() && strings.HasSuffix(file.Name(), ".smt2")
	})
}

func measure(executable, engine, benchmark string) BenchmarkResult {
	cmd := exec.Command("/usr/bin/time", "-v", executable, "--engine", engine, benchmark)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	if cmd.ProcessState == nil || cmd.ProcessState.ExitCode() != 0 {
		log.Fatalf("an error occurred during the execution of z3fp at benchmark \"%v\" using engine \"%v\": %v\n", benchmark, engine, stdErr.String())
	}

	stats := parseStats(stdOut.String())
	result := BenchmarkResult{
		Engine:    engine,
		Benchmark: benchmark,
		Result:    stats["Result"],
	}
	if query, ok := stats["Query"]; ok {
		result.Query = lo.Must(strconv.ParseFloat(query, 64))
	}

	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	result.Duration = parseDurationLine(getLine("wall clock"))
	result.Memory = parseMemoryLine(getLine("maximum resident set size"))
	result.CpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return result
}

// parseStats collects the "BRUNCH_STAT key value" lines printed by z3fp.
func parseStats(output string) map[string]string {
	stats := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		if key, value, ok := parseStatLine(line); ok {
			stats[key] = value
		}
	}
	return stats
}

func parseStatLine(line string) (key, value string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 || fields[0] != statPrefix {
		return "", "", false
	}
	return fields[1], strings.Join(fields[2:], " "), true
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Engine", "Benchmark", "Result", "Query(s)", "Duration(ms)", "Memory(MB)", "CPU(%)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.Engine,
			result.Benchmark,
			result.Result,
			fmt.Sprintf("%.2f", result.Query),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

// Resident set size is reported in KB
func parseMemoryLine(line string) float32 {
	memoryStr := strings.Split(line, ":")[1][1:]
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) / MB
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.Split(line, ":")[1][1:]
	percentageStr = percentageStr[:len(percentageStr)-1]
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
