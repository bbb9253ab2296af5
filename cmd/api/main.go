package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apiassessment "sme_assessment/pkg/api/assessment"
	"sme_assessment/pkg/core/assessment"
	"sme_assessment/pkg/core/benchmark"
	"sme_assessment/pkg/core/scoring"
	"sme_assessment/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Scoring config: file if present, built-in defaults otherwise.
	scoringCfg := scoring.DefaultConfig()
	if cfg, err := scoring.LoadConfig("config/scoring.yaml"); err != nil {
		fmt.Printf("[CONFIG] Using built-in scoring config (%v)\n", err)
	} else {
		scoringCfg = cfg
		fmt.Println("[CONFIG] Loaded config/scoring.yaml")
	}

	// Benchmark table: same fallback strategy.
	table := benchmark.DefaultTable()
	if t, err := benchmark.LoadTable("config/benchmarks.yaml"); err != nil {
		fmt.Printf("[CONFIG] Using built-in benchmark table (%v)\n", err)
	} else {
		table = t
		fmt.Println("[CONFIG] Loaded config/benchmarks.yaml")
	}

	// Database is optional: without it the service assesses but does not
	// record an audit trail.
	if err := store.InitDB(context.Background()); err != nil {
		fmt.Printf("[DB] Running without persistence: %v\n", err)
	} else {
		defer store.Close()
		fmt.Println("[DB] Connected")
	}

	engine := assessment.NewEngine(scoringCfg, table)
	apiassessment.InitHandler(engine)

	http.HandleFunc("/api/assessment/run", apiassessment.HandleRun)
	http.HandleFunc("/api/assessment/get", apiassessment.HandleGet)
	http.HandleFunc("/api/assessment/list", apiassessment.HandleList)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("[ASSESS] API listening on :%s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[ASSESS] Server stopped: %v\n", err)
		os.Exit(1)
	}
}
