package cli

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"pfeifer.dev/plannerd/params"
)

func resetStats() error {
	prompt := promptui.Prompt{
		Label:     "Clear all accumulated usage statistics",
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		fmt.Println("Statistics left untouched")
		return nil
	}

	paths := []string{
		params.PLANNER_STATS,
		params.PLANNER_DRIVES,
		params.PLANNER_KILOMETERS,
		params.PLANNER_MINUTES,
	}
	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := params.RemoveParam(path); err != nil {
			return err
		}
	}

	fmt.Println("Statistics cleared")
	return nil
}
