// The tool command inspects and migrates contract stores. It opens a
// store through one of the disk backends and runs maintenance
// operations that are too intrusive for a running service.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/halcyonchain/halcyon/backend"
	"github.com/halcyonchain/halcyon/backend/leveldb"
	"github.com/halcyonchain/halcyon/backend/sqlite"
	"github.com/halcyonchain/halcyon/common/logging"
)

var logLevelFlag = &cli.StringFlag{
	Name:  "log-level",
	Usage: "log level (debug, info, warn, error)",
	Value: "info",
}

var backendFlag = &cli.StringFlag{
	Name:  "backend",
	Usage: "storage backend (leveldb, sqlite)",
	Value: "leveldb",
}

func main() {
	app := &cli.App{
		Name:  "halcyon-tool",
		Usage: "inspects and migrates contract stores",
		Flags: []cli.Flag{logLevelFlag, backendFlag},
		Commands: []*cli.Command{
			&Dump,
			&Export,
			&Import,
			&Info,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newLogger(context *cli.Context) (logging.Logger, error) {
	var level logging.LogLevel
	if err := level.Set(context.String(logLevelFlag.Name)); err != nil {
		return nil, err
	}
	return logging.NewZapLogger(level, false)
}

type closableStore interface {
	backend.Store
	Close() error
}

// openStore opens the store at path with the selected disk backend.
func openStore(context *cli.Context, path string) (closableStore, error) {
	switch name := context.String(backendFlag.Name); name {
	case "leveldb":
		return leveldb.Open(path)
	case "sqlite":
		return sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}
