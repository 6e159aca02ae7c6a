package main

import (
	"fmt"
	"io"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/dkozTA/thai-dict-web/internal/app/importer"
	"github.com/dkozTA/thai-dict-web/internal/app/importer/entrybuilder"
)

var dryRunFlag = &cli.BoolFlag{
	Name:  "dry-run",
	Usage: "parse the input and report without writing",
}

var importSheetCommand = &cli.Command{
	Name:      "import-sheet",
	Usage:     "import a vocabulary spreadsheet (.xlsx or .csv)",
	ArgsUsage: "FILE",
	Flags:     []cli.Flag{dryRunFlag},
	Action: func(c *cli.Context) error {
		path, err := fileArg(c)
		if err != nil {
			return err
		}
		rows, err := importer.ReadSheetFile(path)
		if err != nil {
			return err
		}

		return runImport(c, func(e *env) importer.BatchResult {
			imp := importer.NewSheetImporter(e.logger, e.dict.Entries, entrybuilder.New(), e.cfg.Import)
			return imp.Run(c.Context, rows, c.Bool("dry-run"))
		})
	},
}

var importDocCommand = &cli.Command{
	Name:      "import-doc",
	Usage:     "import a vocabulary document (.txt or .pdf)",
	ArgsUsage: "FILE",
	Flags:     []cli.Flag{dryRunFlag},
	Action: func(c *cli.Context) error {
		path, err := fileArg(c)
		if err != nil {
			return err
		}
		text, err := importer.ReadDocumentFile(path)
		if err != nil {
			return err
		}

		return runImport(c, func(e *env) importer.BatchResult {
			imp := importer.NewDocumentImporter(e.logger, e.dict.Entries, entrybuilder.New(), e.cfg.Import)
			return imp.Run(c.Context, text, c.Bool("dry-run"))
		})
	},
}

func fileArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("%s: expected exactly one FILE argument", c.Command.Name)
	}
	return c.Args().First(), nil
}

func runImport(c *cli.Context, run func(e *env) importer.BatchResult) error {
	e, err := openEnv(c)
	if err != nil {
		return err
	}
	defer e.Close()

	res := run(e)
	printSummary(c.App.Writer, res, e.cfg.Import.ErrorSamples)

	if res.Failed > 0 {
		return fmt.Errorf("%d entries failed to write", res.Failed)
	}
	return nil
}

func printSummary(w io.Writer, res importer.BatchResult, samples int) {
	s := res.Summary(samples)

	mode := "written"
	if res.DryRun {
		mode = "dry run, nothing written"
	}
	fmt.Fprintf(w, "parsed %d, written %d, failed %d, skipped %d, errors %d (%s)\n",
		s.Parsed, s.Written, s.Failed, s.Skipped, s.ErrorCount, mode)

	if len(s.Samples) == 0 {
		return
	}
	tbl := table.New("Line", "Reason", "Input").WithWriter(w)
	for _, e := range s.Samples {
		tbl.AddRow(e.LineNumber, e.Reason, truncate(e.Raw, 60))
	}
	tbl.Print()
	if s.MoreErrors > 0 {
		fmt.Fprintf(w, "... and %d more\n", s.MoreErrors)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
