package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jmorganca/f16vec/format"
	"github.com/jmorganca/f16vec/types/half"
	"github.com/jmorganca/f16vec/vector"
)

func showSummary(r *vector.Result, w io.Writer) error {
	counts := r.Counts()
	total := uint64(r.Len())

	var data [][]string
	for _, op := range half.Ops {
		n := uint64(counts[op])
		data = append(data, []string{op.String(), format.HumanNumber(n), format.Percent(n, total)})
	}
	data = append(data, []string{"TOTAL", format.HumanNumber(total), format.Percent(total, total)})
	data = append(data, []string{"PAIRS", format.HumanNumber(uint64(r.Pairs())), "-"})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"OP", "VECTORS", "SHARE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}
