package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func runList(cmd *cobra.Command, args []string) error {
	metas, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		fmt.Println("no saved puzzles")
		return nil
	}
	for _, m := range metas {
		created := time.Unix(0, m.CreatedAt).Format(time.RFC3339)
		if m.Name != "" {
			fmt.Printf("%s  %-7s %s  %s\n", m.ID, m.Difficulty, created, m.Name)
		} else {
			fmt.Printf("%s  %-7s %s\n", m.ID, m.Difficulty, created)
		}
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := svc.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(renderBoard(&p.Board))
	fmt.Printf("difficulty: %s  seed: %s\n", p.Difficulty, p.Seed)
	fmt.Printf("solution hash: %s\n", p.SolutionHash)
	return nil
}
