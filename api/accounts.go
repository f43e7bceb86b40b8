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

	model2 "github.com/pesa-ledger/pesa/api/model"
	"github.com/pesa-ledger/pesa/model"
)

// CreateAccount handles the creation of a new ledger account.
// It binds the incoming JSON request to a CreateAccount payload,
// validates it, and opens the account with its initial deposit.
//
// Responses:
// - 400 Bad Request: If there's an error in binding JSON or validating the payload.
// - 409 Conflict: If the account name is already taken.
// - 201 Created: If the account is successfully created.
func (a Api) CreateAccount(c *gin.Context) {
	var newAccount model2.CreateAccount
	// Bind the incoming JSON request to the newAccount payload
	if err := c.ShouldBindJSON(&newAccount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	// Validate the payload
	err := newAccount.ValidateCreateAccount()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.pesa.CreateAccount(newAccount.Name, newAccount.Credential, newAccount.InitialDepositMinor(a.precision))
	if err != nil {
		respondError(c, err)
		return
	}

	balance := model.FromMinorUnits(resp.Balance, a.precision)
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Account %s created with %.2f", resp.Name, balance),
		"name":    resp.Name,
		"balance": balance,
	})
}

// CheckBalance handles an authenticated balance inquiry. Each
// successful inquiry is recorded in the transaction log by the engine.
//
// Responses:
// - 400 Bad Request: If there's an error in binding JSON or validating the payload.
// - 401 Unauthorized: If authentication fails.
// - 200 OK: The account name and current balance.
func (a Api) CheckBalance(c *gin.Context) {
	var inquiry model2.CheckBalance
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	err := inquiry.ValidateCheckBalance()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	resp, err := a.pesa.CheckBalance(inquiry.Name, inquiry.Credential)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": resp.Name,
		"balance": model.FromMinorUnits(resp.Balance, a.precision),
	})
}
