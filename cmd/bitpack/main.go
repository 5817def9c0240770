// Command bitpack plans declarative container schemas and prints their bit
// layouts.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/calebcase/bitpack/diagram"
	"github.com/calebcase/bitpack/schema"
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	app := cli.NewApp()
	app.Name = "bitpack"
	app.Usage = "plan and inspect bit-packed container layouts"
	app.Commands = []cli.Command{
		{
			Name:      "layout",
			Usage:     "plan a YAML schema and print its bit layout",
			ArgsUsage: "<schema.yaml>",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "dump",
					Usage: "dump the planned layout structure",
				},
			},
			Action: func(c *cli.Context) error {
				return layoutAction(log, c)
			},
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		log.Fatal("bitpack failed", zap.Error(err))
	}
}

func layoutAction(log *zap.Logger, c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.NewExitError("usage: bitpack layout <schema.yaml>", 1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	doc, err := schema.Parse(data)
	if err != nil {
		return err
	}

	lay, err := doc.Plan()
	if err != nil {
		return err
	}

	log.Debug("planned",
		zap.String("schema", path),
		zap.Int("bytes", lay.Bytes),
		zap.Int("fields", len(lay.Fields)),
		zap.Bool("fallible", lay.Fallible),
	)

	fmt.Printf("container: %d bytes, %s bit order\n\n", lay.Bytes, lay.Order)

	for _, f := range lay.Fields {
		fmt.Printf("%-16s %-8s start=%-4d width=%d\n", f.Name, f.Kind, f.StartBit, f.Width)
	}

	fmt.Println()
	fmt.Print(diagram.Render(lay.Bytes, lay.Order, lay.Fields))

	if c.Bool("dump") {
		fmt.Print(spew.Sdump(lay))
	}

	return nil
}
