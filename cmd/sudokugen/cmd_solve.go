package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/solver"
)

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := readBoard(args)
	if err != nil {
		return err
	}
	out, st, err := svc.Solve(cmd.Context(), b)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			fmt.Println("unsolvable")
		}
		return err
	}
	logger.Info("solved", "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
	fmt.Println(renderBoard(out))
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	b, err := readBoard(args)
	if err != nil {
		return err
	}
	n, st, err := svc.CountSolutions(cmd.Context(), b, countLimit)
	if err != nil {
		return err
	}
	logger.Info("counted", "nodes", st.Nodes, "dur", st.Duration.Round(time.Millisecond))
	if n >= countLimit {
		fmt.Printf("solutions: >= %d\n", n)
	} else {
		fmt.Printf("solutions: %d\n", n)
	}
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	b, err := readBoard(args)
	if err != nil {
		return err
	}
	ok, conflicts, err := svc.Validate(cmd.Context(), b)
	if err != nil {
		return err
	}
	if ok {
		fmt.Println("ok")
		return nil
	}
	for _, cc := range conflicts {
		fmt.Printf("conflict at r=%d c=%d\n", cc.Row, cc.Col)
	}
	return fmt.Errorf("%d conflict(s)", len(conflicts))
}

func runHint(cmd *cobra.Command, args []string) error {
	b, err := readBoard(args)
	if err != nil {
		return err
	}
	h, found, err := svc.Hint(cmd.Context(), b, parseTier(maxTier))
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("no hint found at this tier")
		return nil
	}
	for _, cc := range h.Cells {
		fmt.Printf("%s (r=%d c=%d)\n", h.Message, cc.Row, cc.Col)
	}
	return nil
}

func parseTier(s string) domain.StrategyTier {
	switch s {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	case "xwing":
		return domain.StrategyXWing
	default:
		return domain.StrategySingles
	}
}
