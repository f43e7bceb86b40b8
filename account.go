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
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/pesa-ledger/pesa/internal/apierror"
	"github.com/pesa-ledger/pesa/model"
)

// authenticate reports whether the account exists and the supplied
// credential matches the stored one exactly. The compare is
// constant-time; there is no hashing or normalization, which is the
// documented baseline behavior and not safe for production credentials.
// Must be called with the ledger mutex held.
func (l *Ledger) authenticate(name, credential string) bool {
	account, ok := l.accounts[name]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(account.Credential), []byte(credential)) == 1
}

// withdraw debits the named account. Must be called with the ledger
// mutex held; the balance never goes negative.
func (l *Ledger) withdraw(name string, amount int64) error {
	account, ok := l.accounts[name]
	if !ok {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("account %s not found", name), nil)
	}
	if amount > account.Balance {
		return apierror.NewAPIError(apierror.ErrInsufficientFunds, "insufficient funds", nil)
	}
	account.Balance -= amount
	return nil
}

// deposit credits the named account unconditionally. Must be called
// with the ledger mutex held.
func (l *Ledger) deposit(name string, amount int64) error {
	account, ok := l.accounts[name]
	if !ok {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("account %s not found", name), nil)
	}
	account.Balance += amount
	return nil
}

// CreateAccount creates a new account with the given name, credential
// and initial deposit, and records a create_account transaction for it.
//
// Parameters:
// - name: The unique account name.
// - credential: The opaque secret used to authenticate the account.
// - initialDeposit: The opening balance in minor units; must be >= 0.
//
// Returns:
// - *model.Account: A copy of the created account.
// - error: ALREADY_EXISTS when the name is taken, INVALID_AMOUNT when
//   the initial deposit is negative.
func (p *Pesa) CreateAccount(name, credential string, initialDeposit int64) (*model.Account, error) {
	if initialDeposit < 0 {
		return nil, apierror.NewAPIError(apierror.ErrInvalidAmount, "initial deposit cannot be negative", nil)
	}

	l := p.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[name]; ok {
		return nil, apierror.NewAPIError(apierror.ErrAlreadyExists, fmt.Sprintf("account %s already exists", name), nil)
	}

	account := &model.Account{
		Name:       name,
		Credential: credential,
		Balance:    initialDeposit,
		CreatedAt:  time.Now(),
	}
	l.accounts[name] = account
	l.appendTransaction(model.KindCreateAccount, name, "", model.Int64Ptr(initialDeposit))

	cp := *account
	return &cp, nil
}

// GetAccount returns a copy of the named account's current state, or
// NOT_FOUND when it does not exist. Callers never receive internal
// pointers.
func (p *Pesa) GetAccount(name string) (*model.Account, error) {
	l := p.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[name]
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("account %s not found", name), nil)
	}
	cp := *account
	return &cp, nil
}
