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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesa-ledger/pesa/internal/apierror"
	"github.com/pesa-ledger/pesa/model"
)

func errCode(t *testing.T, err error) apierror.ErrorCode {
	t.Helper()
	apiErr, ok := err.(apierror.APIError)
	require.True(t, ok, "expected an APIError, got %T", err)
	return apiErr.Code
}

func TestMakePayment(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 10000)
	require.NoError(t, err)
	_, err = engine.CreateAccount("bob", "pw2", 0)
	require.NoError(t, err)

	txn, err := engine.MakePayment("alice", "pw1", "bob", 4000)
	assert.NoError(t, err)
	assert.Equal(t, model.KindPayment, txn.Kind)
	assert.Equal(t, "alice", txn.Sender)
	assert.Equal(t, "bob", txn.Receiver)
	assert.Equal(t, int64(4000), txn.AmountValue())

	alice, _ := engine.GetAccount("alice")
	bob, _ := engine.GetAccount("bob")
	assert.Equal(t, int64(6000), alice.Balance)
	assert.Equal(t, int64(4000), bob.Balance)

	// Two create entries plus one payment entry.
	assert.Len(t, engine.Transactions(), 3)
}

func TestMakePaymentWrongCredential(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 10000)
	require.NoError(t, err)
	_, err = engine.CreateAccount("bob", "pw2", 0)
	require.NoError(t, err)
	before := len(engine.Transactions())

	_, err = engine.MakePayment("alice", "wrongpw", "bob", 1000)
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrUnauthorized, errCode(t, err))

	alice, _ := engine.GetAccount("alice")
	bob, _ := engine.GetAccount("bob")
	assert.Equal(t, int64(10000), alice.Balance)
	assert.Equal(t, int64(0), bob.Balance)
	assert.Len(t, engine.Transactions(), before)
}

func TestMakePaymentUnknownSender(t *testing.T) {
	engine := newTestEngine()

	// Authentication fails before receiver existence is consulted, so
	// an unauthenticated caller cannot probe for accounts.
	_, err := engine.MakePayment("ghost", "pw", "also-ghost", 1000)
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrUnauthorized, errCode(t, err))
}

func TestMakePaymentUnknownReceiver(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 10000)
	require.NoError(t, err)

	_, err = engine.MakePayment("alice", "pw1", "ghost", 1000)
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrNotFound, errCode(t, err))

	alice, _ := engine.GetAccount("alice")
	assert.Equal(t, int64(10000), alice.Balance)
	assert.Len(t, engine.Transactions(), 1)
}

func TestMakePaymentInvalidAmount(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 10000)
	require.NoError(t, err)
	_, err = engine.CreateAccount("bob", "pw2", 0)
	require.NoError(t, err)

	for _, amount := range []int64{0, -500} {
		_, err = engine.MakePayment("alice", "pw1", "bob", amount)
		assert.Error(t, err)
		assert.Equal(t, apierror.ErrInvalidAmount, errCode(t, err))
	}
	assert.Len(t, engine.Transactions(), 2)
}

func TestMakePaymentInsufficientFunds(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 1000)
	require.NoError(t, err)
	_, err = engine.CreateAccount("bob", "pw2", 0)
	require.NoError(t, err)
	before := len(engine.Transactions())

	_, err = engine.MakePayment("alice", "pw1", "bob", 5000)
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrInsufficientFunds, errCode(t, err))

	alice, _ := engine.GetAccount("alice")
	bob, _ := engine.GetAccount("bob")
	assert.Equal(t, int64(1000), alice.Balance)
	assert.Equal(t, int64(0), bob.Balance)
	assert.Len(t, engine.Transactions(), before)
}

func TestCheckBalance(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 7500)
	require.NoError(t, err)

	account, err := engine.CheckBalance("alice", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, int64(7500), account.Balance)

	// Reads are idempotent on balances but every check is audited with a
	// nil-amount entry.
	again, err := engine.CheckBalance("alice", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, account.Balance, again.Balance)

	txns := engine.Transactions()
	assert.Len(t, txns, 3)
	for _, txn := range txns[1:] {
		assert.Equal(t, model.KindCheckBalance, txn.Kind)
		assert.Equal(t, "alice", txn.Sender)
		assert.Nil(t, txn.Amount)
	}
}

func TestCheckBalanceUnauthorized(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 7500)
	require.NoError(t, err)

	_, err = engine.CheckBalance("alice", "nope")
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrUnauthorized, errCode(t, err))

	// Unknown accounts also fail closed as unauthorized.
	_, err = engine.CheckBalance("ghost", "pw")
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrUnauthorized, errCode(t, err))

	assert.Len(t, engine.Transactions(), 1)
}

func TestTransactionLogOrdering(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 10000)
	require.NoError(t, err)
	_, err = engine.CreateAccount("bob", "pw2", 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := engine.MakePayment("alice", "pw1", "bob", 100)
		require.NoError(t, err)
	}

	txns := engine.Transactions()
	assert.Len(t, txns, 7)
	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i].CreatedAt.Before(txns[i-1].CreatedAt),
			"timestamps must be non-decreasing in log order")
	}
}

func TestConcurrentPaymentsConserveBalance(t *testing.T) {
	engine := newTestEngine()
	_, err := engine.CreateAccount("alice", "pw1", 100000)
	require.NoError(t, err)
	_, err = engine.CreateAccount("bob", "pw2", 100000)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = engine.MakePayment("alice", "pw1", "bob", 300)
		}()
		go func() {
			defer wg.Done()
			_, _ = engine.MakePayment("bob", "pw2", "alice", 200)
		}()
	}
	wg.Wait()

	alice, _ := engine.GetAccount("alice")
	bob, _ := engine.GetAccount("bob")
	assert.Equal(t, int64(200000), alice.Balance+bob.Balance, "money must be conserved")
	assert.GreaterOrEqual(t, alice.Balance, int64(0))
	assert.GreaterOrEqual(t, bob.Balance, int64(0))

	// Every payment entry in the log corresponds to a successful
	// transfer; the net of the log must equal the net balance movement.
	var net int64
	for _, txn := range engine.Transactions() {
		if txn.Kind != model.KindPayment {
			continue
		}
		switch txn.Sender {
		case "alice":
			net -= txn.AmountValue()
		case "bob":
			net += txn.AmountValue()
		}
	}
	assert.Equal(t, alice.Balance-100000, net)
}
