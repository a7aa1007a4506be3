// SPDX-FileCopyrightText: 2025 ccmclean authors
// SPDX-License-Identifier: Apache-2.0

package cleanup

import (
	"io"

	"github.com/logrusorgru/aurora/v3"
	"github.com/olekukonko/tablewriter"

	"github.com/winadmins/ccmclean/pkg/teardown"
)

// WriteSummary renders the per-target outcomes as a table. Colors are
// applied only when colored is set, so piped output stays clean.
func WriteSummary(w io.Writer, results []teardown.Result, colored bool) {
	au := aurora.NewAurora(colored)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Target", "Found", "Result", "Note"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t") // pad with tabs
	table.SetNoWhiteSpace(true)

	for _, res := range results {
		found := "no"
		if res.Found {
			found = "yes"
		}
		table.Append([]string{res.Kind, res.Target, found, verdict(au, res), res.Msg})
	}

	table.Render()
}

func verdict(au aurora.Aurora, res teardown.Result) string {
	switch {
	case res.Planned:
		return au.Cyan("planned").String()
	case res.Skipped:
		return au.Yellow("skipped").String()
	case !res.Found && res.Succeeded:
		return au.Yellow("not found").String()
	case res.Succeeded:
		return au.Green("removed").String()
	default:
		return au.Red("failed").String()
	}
}
