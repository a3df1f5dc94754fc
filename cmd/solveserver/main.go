// Command solveserver exposes the solver over HTTP for local
// experimentation: POST /solve with a JSON body of numbers and a
// target, get the ranked solutions back.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/numseq/go-maketen/internal/observability"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	maketen "github.com/numseq/go-maketen"
)

type solveRequest struct {
	Numbers []int64 `json:"numbers"`
	Target  int64   `json:"target"`
}

type solveResponse struct {
	RequestID string             `json:"requestId"`
	Solutions []maketen.Solution `json:"solutions"`
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	traceStdout := flag.Bool("trace", false, "export spans to stdout")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	obs := maketen.ObservabilityConfig{
		ServiceName:        "solveserver",
		EnableServerTiming: true,
	}
	if *traceStdout {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			log.Fatal("Failed to create trace exporter:", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("tracer shutdown failed", "error", err)
			}
		}()
		obs.TracerProvider = tp
	}

	solver := maketen.NewSolver(
		maketen.WithLogger(logger),
		maketen.WithObservability(obs),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /solve", func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		reqLogger := logger.With("request_id", requestID)

		var req solveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		timing := observability.StartServerTimingWithDesc(r.Context(), "solve", "expression search")
		solutions, err := solver.Solve(r.Context(), req.Numbers, req.Target)
		timing.Stop()
		if err != nil {
			reqLogger.Error("solve failed", "error", err)
			http.Error(w, "internal solver error", http.StatusInternalServerError)
			return
		}
		if solutions == nil {
			solutions = []maketen.Solution{}
		}

		reqLogger.Info("solve handled",
			"numbers", req.Numbers,
			"target", req.Target,
			"solutions", len(solutions),
		)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(solveResponse{
			RequestID: requestID,
			Solutions: solutions,
		}); err != nil {
			reqLogger.Error("response encoding failed", "error", err)
		}
	})

	handler := servertiming.Middleware(mux, nil)

	fmt.Println("Solve server starting...")
	fmt.Println("Endpoints:")
	fmt.Printf("  POST http://localhost%s/solve  (body: {\"numbers\": [1, 2, 3, 4], \"target\": 10})\n", *addr)
	fmt.Println()

	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatal("Server failed:", err)
	}
}
