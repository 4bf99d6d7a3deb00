package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	diff := domain.ParseDifficulty(difficulty)
	p, st, err := svc.Generate(cmd.Context(), seed, diff)
	if err != nil {
		logger.Error("generate failed", "err", err)
		return err
	}
	logger.Info("generated",
		"difficulty", diff.String(),
		"seed", p.Seed,
		"givens", p.Board.Givens(),
		"nodes", st.Nodes,
		"dur", st.Duration.Round(time.Millisecond),
	)

	fmt.Println(renderBoard(&p.Board))
	fmt.Printf("seed: %s\n", p.Seed)
	fmt.Printf("solution hash: %s\n", p.SolutionHash)

	if save {
		p.Name = name
		if err := svc.Save(cmd.Context(), p); err != nil {
			logger.Error("save failed", "err", err)
			return err
		}
		fmt.Printf("saved: %s\n", p.ID)
	}
	return nil
}
