/*
Copyright 2024 Pesa Ledger Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pesa-ledger/pesa/internal/chart"
	"github.com/pesa-ledger/pesa/model"
)

// SenderTotal is one row of the per-sender aggregation.
type SenderTotal struct {
	Sender      string  `json:"sender"`
	TotalAmount float64 `json:"total_amount"`
}

// TransactionSummary returns total transacted amount grouped by sender.
// Balance checks contribute 0. An empty log yields the explicit
// empty-result marker instead of an empty list.
//
// Responses:
// - 200 OK: The summary rows, or the empty-result marker.
func (a Api) TransactionSummary(c *gin.Context) {
	summary := a.pesa.SummaryBySender()
	if len(summary) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no transactions found"})
		return
	}

	rows := make([]SenderTotal, 0, len(summary))
	for sender, total := range summary {
		rows = append(rows, SenderTotal{
			Sender:      sender,
			TotalAmount: model.FromMinorUnits(total, a.precision),
		})
	}
	// Grouping order is unspecified by the contract; sort by sender so
	// the wire output is stable.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Sender < rows[j].Sender })

	c.JSON(http.StatusOK, gin.H{"summary": rows})
}

// TransactionChart renders the per-sender totals as a PNG bar chart,
// sorted descending by total.
//
// Responses:
// - 200 OK: image/png bytes, or the empty-result marker when the log is empty.
// - 500 Internal Server Error: If rendering fails.
func (a Api) TransactionChart(c *gin.Context) {
	summary := a.pesa.SummaryBySender()
	if len(summary) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "no transactions to visualize"})
		return
	}

	img, err := chart.Render(summary, a.precision)
	if err != nil {
		logrus.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render transaction chart"})
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}
