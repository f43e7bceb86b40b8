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

package pesa

import (
	"fmt"

	"github.com/pesa-ledger/pesa/internal/apierror"
	"github.com/pesa-ledger/pesa/model"
)

// MakePayment moves amount from sender to receiver and records one
// payment transaction. The whole operation runs in a single critical
// section, so no concurrent caller can observe a debited-but-not-credited
// state, and failed payments leave no trace in the log.
//
// The checks run in contract order: authentication first (an
// unauthenticated caller learns nothing about other accounts), then
// receiver existence, then amount validity, then funds.
//
// Returns:
// - *model.Transaction: The recorded payment transaction.
// - error: UNAUTHORIZED, NOT_FOUND, INVALID_AMOUNT or INSUFFICIENT_FUNDS.
func (p *Pesa) MakePayment(sender, credential, receiver string, amount int64) (*model.Transaction, error) {
	l := p.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.authenticate(sender, credential) {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, "invalid login", nil)
	}
	if _, ok := l.accounts[receiver]; !ok {
		return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("receiver account %s doesn't exist", receiver), nil)
	}
	if amount <= 0 {
		return nil, apierror.NewAPIError(apierror.ErrInvalidAmount, "payment amount must be positive", nil)
	}
	if err := l.withdraw(sender, amount); err != nil {
		return nil, err
	}
	if err := l.deposit(receiver, amount); err != nil {
		// withdraw succeeded, so the receiver was checked above; this
		// branch is unreachable while the mutex is held.
		return nil, err
	}

	txn := l.appendTransaction(model.KindPayment, sender, receiver, model.Int64Ptr(amount))
	cp := *txn
	return &cp, nil
}

// CheckBalance authenticates the account and returns its current state.
// Reads are audited: every successful check appends a check_balance
// transaction with a nil amount, so the log is a complete trail of
// access, not just mutation. The balance itself is unchanged.
func (p *Pesa) CheckBalance(name, credential string) (*model.Account, error) {
	l := p.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.authenticate(name, credential) {
		return nil, apierror.NewAPIError(apierror.ErrUnauthorized, "invalid login", nil)
	}

	l.appendTransaction(model.KindCheckBalance, name, "", nil)

	cp := *l.accounts[name]
	return &cp, nil
}
