package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"SocialMedia/pkg/config"
)

type RunSummary struct {
	RunID     string       `json:"run_id"`
	BaseURL   string       `json:"base_url"`
	Username  string       `json:"username"`
	StartedAt string       `json:"started_at"`
	EndedAt   string       `json:"ended_at"`
	Env       string       `json:"env"`
	Passed    int          `json:"passed"`
	Failed    int          `json:"failed"`
	Results   []ResultItem `json:"results"`
}

func ensureDir(p string) error {
	return os.MkdirAll(p, 0o755)
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, items []ResultItem) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"step", "method", "path", "want_status", "got_status", "passed", "duration_ms", "error"})
	for _, it := range items {
		_ = w.Write([]string{
			it.Step,
			it.Method,
			it.Path,
			strconv.Itoa(it.WantStatus),
			strconv.Itoa(it.GotStatus),
			strconv.FormatBool(it.Passed),
			fmt.Sprintf("%d", it.DurationMs),
			it.Error,
		})
	}
	w.Flush()
	return w.Error()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	base := flag.String("base", envOr("SMOKE_BASE_URL", "http://localhost:"+cfg.Port), "server base URL")
	outDir := flag.String("out", filepath.Join("cmd", "smoke", "results"), "directory for the run report")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request timeout")
	sleep := flag.Duration("sleep", 0, "pause between steps")
	flag.Parse()

	started := time.Now()
	runID := uuid.NewString()
	// fresh username so the run can repeat against the same database
	username := "smoke-" + strings.Split(runID, "-")[0]

	client := &http.Client{Timeout: *timeout}
	results, runErr := runScenario(context.Background(), client, *base, username, *sleep)
	for _, r := range results {
		mark := "ok"
		if !r.Passed {
			mark = "FAIL " + r.Error
		}
		fmt.Printf("[%s] %s %s -> %d (%dms) %s\n", r.Step, r.Method, r.Path, r.GotStatus, r.DurationMs, mark)
	}

	summary := RunSummary{
		RunID:     runID,
		BaseURL:   *base,
		Username:  username,
		StartedAt: started.Format(time.RFC3339),
		EndedAt:   time.Now().Format(time.RFC3339),
		Env:       cfg.AppEnv,
		Results:   results,
	}
	for _, r := range results {
		if r.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	if err := ensureDir(*outDir); err != nil {
		fmt.Println("failed to create results dir:", err)
		os.Exit(1)
	}
	stamp := started.Format("20060102-150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("smoke-%s.json", stamp))
	csvPath := filepath.Join(*outDir, fmt.Sprintf("smoke-%s.csv", stamp))
	if err := writeJSON(jsonPath, summary); err != nil {
		fmt.Println("failed to write JSON:", err)
		os.Exit(1)
	}
	if err := writeCSV(csvPath, results); err != nil {
		fmt.Println("failed to write CSV:", err)
		os.Exit(1)
	}

	fmt.Println("\nSaved:")
	fmt.Println(" -", jsonPath)
	fmt.Println(" -", csvPath)

	if errors.Is(runErr, errStepsFailed) {
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
