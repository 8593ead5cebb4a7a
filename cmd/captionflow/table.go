package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

const captionColumnWidth = 72

func renderCandidates(candidates []string, selected int, fancy bool) string {
	if len(candidates) == 0 {
		return ""
	}

	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	tw.AppendHeader(table.Row{"#", "Caption", "Selected"})

	for i, c := range candidates {
		mark := ""
		if i == selected {
			mark = "*"
		}
		tw.AppendRow(table.Row{fmt.Sprintf("%d", i+1), c, mark})
		if i < len(candidates)-1 {
			tw.AppendSeparator()
		}
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: captionColumnWidth},
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
