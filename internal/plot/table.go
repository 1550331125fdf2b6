//    topicmodels
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package plot

import (
	"fmt"
	"github.com/e-gun/topicmodels/internal/vec"
	"html"
	"strings"
)

// TopicSummaryTable - html table that reports on top words and topic weights in the model
func TopicSummaryTable(topics [][]vec.RankedTerm, counts []int, shares []float64, ndocs int, topn int) string {
	const (
		NTH = 2

		FULLTABLE = `
	<table class="topicwords"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "4">Topic model of the corpus via Non-negative Matrix Factorization</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic</td>
		<td class="vectorrank">Top %d words associated with each topic</td>
		<td class="vectorrank"># of documents with topic N as their dominant topic</td>
		<td class="vectorrank">scaled total accumulated weight of each topic</td>
	</tr>
    %s`

		TABLEROW = `
	<tr class="%s">%s
	</tr>`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>
		<td class="vectorsent">%d (%.2f%%)</td>
		<td class="vectorsent">%.2f%%</td>`
	)

	var tablecolumn []string
	for topic := range topics {
		ts := topics[topic]
		n := topn
		if n > len(ts) || n < 1 {
			n = len(ts)
		}
		ww := make([]string, n)
		for i := 0; i < n; i++ {
			ww[i] = html.EscapeString(ts[i].Term)
		}
		data := strings.Join(ww, ", ")

		count := 0
		if topic < len(counts) {
			count = counts[topic]
		}
		share := float64(0)
		if topic < len(shares) {
			share = shares[topic]
		}
		pct := float64(0)
		if ndocs > 0 {
			pct = float64(count) / float64(ndocs) * 100
		}

		r := fmt.Sprintf(TABLEELEM, topic+1, data, count, pct, share*100)
		tablecolumn = append(tablecolumn, r)
	}

	var tablerows []string
	for i := range tablecolumn {
		rn := "vectorrow"
		if i%NTH == 0 {
			rn = "nthrow"
		}
		tablerows = append(tablerows, fmt.Sprintf(TABLEROW, rn, tablecolumn[i]))
	}

	if topn < 1 && len(topics) > 0 {
		topn = len(topics[0])
	}

	tableout := fmt.Sprintf(TABLETOP, topn, strings.Join(tablerows, "\n"))
	tableout = fmt.Sprintf(FULLTABLE, tableout)
	return tableout
}
