package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/dkozTA/thai-dict-web/internal/domain"
	"github.com/dkozTA/thai-dict-web/internal/service/search"
)

var clearCommand = &cli.Command{
	Name:  "clear",
	Usage: "delete imported entries",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "source",
			Usage: "delete only entries with this source (spreadsheet_import, document_import, manual)",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "delete the entries of every import source",
		},
	},
	Action: func(c *cli.Context) error {
		source := c.String("source")
		if source == "" && !c.Bool("all") {
			return errors.New("clear: pass --source or --all")
		}

		e, err := openEnv(c)
		if err != nil {
			return err
		}
		defer e.Close()

		var n int
		if source != "" {
			n, err = e.dict.Lexicon.ClearBySource(c.Context, domain.Source(source))
		} else {
			n, err = e.dict.Lexicon.ClearAll(c.Context)
		}
		fmt.Fprintf(c.App.Writer, "deleted %d entries\n", n)
		return err
	},
}

var statsCommand = &cli.Command{
	Name:  "stats",
	Usage: "print collection and data quality counts",
	Action: func(c *cli.Context) error {
		e, err := openEnv(c)
		if err != nil {
			return err
		}
		defer e.Close()

		st, err := e.dict.Lexicon.Stats(c.Context)
		if err != nil {
			return err
		}

		w := c.App.Writer
		fmt.Fprintf(w, "total entries: %d\n\n", st.Total)

		cats := table.New("Category", "Entries").WithWriter(w)
		for _, k := range slices.Sorted(maps.Keys(st.ByCategory)) {
			cats.AddRow(k, st.ByCategory[k])
		}
		cats.Print()
		fmt.Fprintln(w)

		srcs := table.New("Source", "Entries").WithWriter(w)
		for _, k := range slices.Sorted(maps.Keys(st.BySource)) {
			srcs.AddRow(k, st.BySource[k])
		}
		srcs.Print()
		fmt.Fprintln(w)

		quality := table.New("Check", "Entries").WithWriter(w)
		quality.AddRow("no meaning", st.NoMeaning)
		quality.AddRow("no examples", st.NoExamples)
		quality.AddRow("no transliteration", st.NoTransliteration)
		quality.Print()

		if len(st.Samples) > 0 {
			fmt.Fprintln(w)
			samples := table.New("Word", "Transliteration", "Meaning").WithWriter(w)
			for _, s := range st.Samples {
				samples.AddRow(s.Word, s.Transliteration, truncate(s.Meaning, 40))
			}
			samples.Print()
		}
		return nil
	},
}

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "search the dictionary",
	ArgsUsage: "QUERY",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "limit", Usage: "maximum number of results"},
		&cli.StringFlag{Name: "mode", Usage: "all, word, phonetic, meaning or auto"},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return errors.New("search: QUERY is required")
		}

		e, err := openEnv(c)
		if err != nil {
			return err
		}
		defer e.Close()

		res, err := e.dict.Search.Search(c.Context, search.Input{
			Query: strings.Join(c.Args().Slice(), " "),
			Limit: c.Int("limit"),
			Mode:  domain.SearchMode(c.String("mode")),
		})
		if err != nil {
			return err
		}

		w := c.App.Writer
		fmt.Fprintf(w, "mode %s, %d of %d\n", res.Mode, len(res.Items), res.TotalFound)
		tbl := table.New("Word", "Transliteration", "Meaning", "Match", "ID").WithWriter(w)
		for _, hit := range res.Items {
			tbl.AddRow(hit.Entry.Word, hit.Entry.Transliteration, truncate(hit.Entry.Meaning, 40), hit.MatchType, hit.Entry.ID)
		}
		tbl.Print()
		return nil
	},
}
