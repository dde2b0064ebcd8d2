package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/urfave/cli/v2"

	"github.com/halcyonchain/halcyon/errors"
)

var Dump = cli.Command{
	Action:    dump,
	Name:      "dump",
	Usage:     "prints every entry of a contract store",
	ArgsUsage: "<store>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "only print entries under this key prefix",
		},
	},
}

func dump(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing store path")
	}
	store, err := openStore(context, context.Args().Get(0))
	if err != nil {
		return err
	}
	defer store.Close()

	prefix := []byte(context.String("prefix"))
	count := 0
	err = store.Iterate(func(key, value []byte) error {
		if len(prefix) > 0 && !strings.HasPrefix(string(key), string(prefix)) {
			return nil
		}
		fmt.Printf("%s = %s\n", printable(key), printable(value))
		count++
		return nil
	})
	if err != nil {
		return errors.SystemError(fmt.Sprintf("dump failed: %v", err))
	}
	fmt.Printf("%d entries\n", count)
	return nil
}

// printable renders store bytes for terminal output. Keys and values
// are mostly text thanks to the hex value coding, so raw text is shown
// where possible and hex otherwise.
func printable(data []byte) string {
	for _, r := range string(data) {
		if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
			return fmt.Sprintf("0x%x", data)
		}
	}
	return string(data)
}
