// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/poiesic/termalign/core"
)

// RenderTable renders results as a plain-text table, one row per reported
// term, in the order given. Per-method columns show the similarity score;
// scores from methods that fell back to the reported term are shown in
// parentheses.
func RenderTable(results []*core.StandardizationResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	// Keep header casing as written instead of go-pretty's upper-casing.
	tw.Style().Format.Header = text.FormatDefault

	tw.AppendHeader(table.Row{"Reported Term", "Label", "Votes", "Lexical", "Fuzzy", "Semantic"})

	for _, result := range results {
		if result == nil {
			continue
		}

		row := table.Row{result.Term, result.Label, result.VoteCount}
		for _, method := range []core.Method{core.MethodLexical, core.MethodFuzzy, core.MethodSemantic} {
			row = append(row, formatVote(findVote(result.Votes, method)))
		}
		tw.AppendRow(row)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func findVote(votes []core.Vote, method core.Method) *core.Vote {
	for i := range votes {
		if votes[i].Method == method {
			return &votes[i]
		}
	}
	return nil
}

func formatVote(vote *core.Vote) string {
	if vote == nil {
		return ""
	}
	if !vote.Accepted {
		return fmt.Sprintf("(%.1f)", vote.Score)
	}
	return fmt.Sprintf("%.1f", vote.Score)
}
