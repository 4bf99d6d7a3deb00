package main

import "github.com/spf13/cobra"

var (
	logLevel   string
	solverKind string
	dataDir    string

	difficulty string
	seed       string
	save       bool
	name       string
	maxTier    string
	countLimit int

	rootCmd = &cobra.Command{
		Use:              "sudokugen",
		Short:            "Deterministic Sudoku puzzle engine",
		Long:             "sudokugen generates seed-reproducible Sudoku puzzles with a unique solution,\nand solves, validates and hints arbitrary boards.",
		PersistentPreRun: setup,
		SilenceUsage:     true,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE:  runGenerate, // cmd_generate.go
	}

	solveCmd = &cobra.Command{
		Use:   "solve [board.json]",
		Short: "Solve a board read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve, // cmd_solve.go
	}

	countCmd = &cobra.Command{
		Use:   "count [board.json]",
		Short: "Count solutions of a board up to a limit",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCount, // cmd_solve.go
	}

	validateCmd = &cobra.Command{
		Use:   "validate [board.json]",
		Short: "Check a board for row/column/box conflicts",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate, // cmd_solve.go
	}

	hintCmd = &cobra.Command{
		Use:   "hint [board.json]",
		Short: "Suggest the next logical step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHint, // cmd_solve.go
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List saved puzzles",
		RunE:  runList, // cmd_store.go
	}

	showCmd = &cobra.Command{
		Use:   "show [id]",
		Short: "Show a saved puzzle",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow, // cmd_store.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&solverKind, "solver", "backtrack", "solver to use: backtrack|dlx")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "./data", "save directory")

	generateCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy|medium|hard|expert")
	generateCmd.Flags().StringVarP(&seed, "seed", "s", "", "seed token (default: time-derived)")
	generateCmd.Flags().BoolVar(&save, "save", false, "persist the puzzle under --data")
	generateCmd.Flags().StringVar(&name, "name", "", "optional puzzle name when saving")

	countCmd.Flags().IntVar(&countLimit, "limit", 2, "stop counting at this many solutions")
	hintCmd.Flags().StringVar(&maxTier, "tier", "singles", "max strategy tier: singles|pairs|advanced|xwing")

	rootCmd.AddCommand(generateCmd, solveCmd, countCmd, validateCmd, hintCmd, listCmd, showCmd)
}
