package chart

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/pesa-ledger/pesa/model"
)

// Render turns a per-sender summary into PNG bar chart bytes. Bars are
// sorted descending by total amount; amounts are converted from minor
// units with the given precision. An empty summary is an error — the
// caller is expected to answer with its empty-result marker instead.
func Render(summary map[string]int64, precision float64) ([]byte, error) {
	if len(summary) == 0 {
		return nil, errors.New("no transactions to visualize")
	}

	type senderTotal struct {
		sender string
		total  int64
	}
	totals := make([]senderTotal, 0, len(summary))
	for sender, total := range summary {
		totals = append(totals, senderTotal{sender: sender, total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].total != totals[j].total {
			return totals[i].total > totals[j].total
		}
		return totals[i].sender < totals[j].sender
	})

	bars := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		bars = append(bars, chart.Value{
			Label: t.sender,
			Value: model.FromMinorUnits(t.total, precision),
		})
	}

	graph := chart.BarChart{
		Title:    "Total Transactions by Sender",
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "rendering transaction chart")
	}
	return buf.Bytes(), nil
}
