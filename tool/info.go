package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/halcyonchain/halcyon/system"
)

var Info = cli.Command{
	Action:    info,
	Name:      "info",
	Usage:     "prints the system values of a store",
	ArgsUsage: "<store>",
}

func info(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing store path")
	}
	store, err := openStore(context, context.Args().Get(0))
	if err != nil {
		return err
	}
	defer store.Close()

	storage := system.NewStorage(store)

	migrated, err := storage.Migrated()
	if err != nil {
		return err
	}
	fmt.Printf("migrated:   %t\n", migrated)

	if rev, ok, err := storage.Revision(); err != nil {
		return err
	} else if ok {
		fmt.Printf("revision:   %d\n", rev)
	} else {
		fmt.Printf("revision:   (not set)\n")
	}

	if price, ok, err := storage.StepPrice(); err != nil {
		return err
	} else if ok {
		fmt.Printf("step price: %s\n", price)
	} else {
		fmt.Printf("step price: (not set)\n")
	}

	if costs, ok, err := storage.StepCosts(); err != nil {
		return err
	} else if ok {
		fmt.Printf("step costs: %d entries\n", len(costs))
	}

	if banned, ok, err := storage.GetScoreBlackList(); err != nil {
		return err
	} else if ok {
		fmt.Printf("black list: %d contracts\n", len(banned))
		for _, addr := range banned {
			fmt.Printf("  %s\n", addr)
		}
	}
	return nil
}
