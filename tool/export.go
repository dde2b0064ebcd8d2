package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/halcyonchain/halcyon/backend"
)

var Export = cli.Command{
	Action:    export,
	Name:      "export",
	Usage:     "writes a store snapshot to a compressed archive",
	ArgsUsage: "<store> <archive>",
}

var Import = cli.Command{
	Action:    runImport,
	Name:      "import",
	Usage:     "loads a compressed archive into a store",
	ArgsUsage: "<archive> <store>",
}

func export(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected <store> and <archive> arguments")
	}
	log, err := newLogger(context)
	if err != nil {
		return err
	}
	store, err := openStore(context, context.Args().Get(0))
	if err != nil {
		return err
	}
	defer store.Close()

	path := context.Args().Get(1)
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := stderrors.Join(backend.Export(store, out), out.Close()); err != nil {
		return err
	}
	log.Infow("store exported", "archive", path)
	return nil
}

func runImport(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected <archive> and <store> arguments")
	}
	log, err := newLogger(context)
	if err != nil {
		return err
	}
	in, err := os.Open(context.Args().Get(0))
	if err != nil {
		return err
	}
	defer in.Close()

	store, err := openStore(context, context.Args().Get(1))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := backend.Import(store, in); err != nil {
		return err
	}
	log.Infow("archive imported", "store", context.Args().Get(1))
	return nil
}
