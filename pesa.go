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
	"time"

	"github.com/pesa-ledger/pesa/model"
)

// Ledger is the aggregate root: the account index and the append-only
// transaction log. A single mutex serializes every mutation so the
// withdraw+deposit+append of a payment is one critical section and no
// reader can observe a torn transaction.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*model.Account
	log      []*model.Transaction
}

// NewLedger creates an empty in-memory ledger. Ledgers are independent;
// tests create as many as they need.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*model.Account)}
}

// Pesa is the ledger engine. All account and log mutation goes through
// its operations; it holds no state of its own besides the ledger
// handle.
type Pesa struct {
	ledger *Ledger
}

// New initializes a new engine over the provided ledger aggregate.
func New(ledger *Ledger) *Pesa {
	return &Pesa{ledger: ledger}
}

// appendTransaction records an accepted operation. Must be called with
// the ledger mutex held; the timestamp is assigned here, so log order is
// timestamp order.
func (l *Ledger) appendTransaction(kind model.TransactionKind, sender, receiver string, amount *int64) *model.Transaction {
	txn := &model.Transaction{
		TransactionID: model.GenerateUUIDWithSuffix("txn"),
		Kind:          kind,
		Sender:        sender,
		Receiver:      receiver,
		Amount:        amount,
		CreatedAt:     time.Now(),
	}
	l.log = append(l.log, txn)
	return txn
}

// Transactions returns a snapshot of the transaction log in insertion
// order. The returned slice is a copy; entries are immutable once
// appended, so callers may iterate and re-iterate freely.
func (p *Pesa) Transactions() []*model.Transaction {
	p.ledger.mu.Lock()
	defer p.ledger.mu.Unlock()
	out := make([]*model.Transaction, len(p.ledger.log))
	copy(out, p.ledger.log)
	return out
}
