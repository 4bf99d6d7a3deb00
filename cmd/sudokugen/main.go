package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/hint"
	"svw.info/sudokugen/internal/infrastructure/storage"
	"svw.info/sudokugen/internal/ports"
	"svw.info/sudokugen/internal/solver"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
)

var (
	logger *slog.Logger
	svc    *usecase.Service
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup runs before every command: configure logging, pick a solver and
// wire providers -> use cases.
func setup(cmd *cobra.Command, args []string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	// Backtracking is the default: it fills in fixed ascending order, so
	// repeated solves of the same board are identical even when the
	// board has several solutions. DLX is the faster opt-in.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(solverKind)) {
	case "dlx":
		s = solver.NewDLXSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}

	g := generator.NewComposer(s)
	v := validator.New()
	st := storage.NewFS(dataDir)
	hin := hint.NewSingles()
	svc = usecase.NewService(s, g, v, hin, st)
}
