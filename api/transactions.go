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
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	model2 "github.com/pesa-ledger/pesa/api/model"
	"github.com/pesa-ledger/pesa/model"
)

// MakePayment handles a transfer between two accounts.
// It binds the incoming JSON request to a MakePayment payload, validates
// it, and executes the transfer atomically through the engine.
//
// Responses:
// - 400 Bad Request: Binding/validation errors or a non-positive amount.
// - 401 Unauthorized: If sender authentication fails.
// - 404 Not Found: If the receiver account doesn't exist.
// - 402 Payment Required: If the sender has insufficient funds.
// - 201 Created: If the payment is successfully recorded.
func (a Api) MakePayment(c *gin.Context) {
	var newPayment model2.MakePayment
	// Bind the incoming JSON request to the newPayment payload
	if err := c.ShouldBindJSON(&newPayment); err != nil {
		logrus.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Validate the payment data
	err := newPayment.ValidateMakePayment()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	txn, err := a.pesa.MakePayment(newPayment.Sender, newPayment.Credential, newPayment.Receiver, newPayment.AmountMinor(a.precision))
	if err != nil {
		respondError(c, err)
		return
	}

	amount := model.FromMinorUnits(txn.AmountValue(), a.precision)
	c.JSON(http.StatusCreated, gin.H{
		"message":        fmt.Sprintf("%.2f sent from %s to %s", amount, txn.Sender, txn.Receiver),
		"transaction_id": txn.TransactionID,
	})
}
