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

// SummaryBySender folds over a snapshot of the transaction log and
// accumulates total amount per sender, in minor units. Records without
// an amount (balance checks) contribute 0. The result is an empty map
// when the log has no entries; it reflects a consistent prefix of the
// log taken at call time.
func (p *Pesa) SummaryBySender() map[string]int64 {
	summary := make(map[string]int64)
	for _, txn := range p.Transactions() {
		summary[txn.Sender] += txn.AmountValue()
	}
	return summary
}
