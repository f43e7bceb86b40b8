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
package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pesa-ledger/pesa/model"
)

// CreateAccount is the payload for opening a new account. The initial
// deposit is a pointer so an explicit 0 validates while a missing field
// does not.
type CreateAccount struct {
	Name           string   `json:"name"`
	Credential     string   `json:"credential"`
	InitialDeposit *float64 `json:"initial_deposit"`
}

// MakePayment is the payload for a transfer between two accounts.
type MakePayment struct {
	Sender     string   `json:"sender"`
	Credential string   `json:"credential"`
	Receiver   string   `json:"receiver"`
	Amount     *float64 `json:"amount"`
}

// CheckBalance is the payload for an authenticated balance inquiry.
type CheckBalance struct {
	Name       string `json:"name"`
	Credential string `json:"credential"`
}

func (a *CreateAccount) ValidateCreateAccount() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Name, validation.Required),
		validation.Field(&a.Credential, validation.Required),
		validation.Field(&a.InitialDeposit, validation.NotNil),
	)
}

func (t *MakePayment) ValidateMakePayment() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Sender, validation.Required),
		validation.Field(&t.Credential, validation.Required),
		validation.Field(&t.Receiver, validation.Required),
		validation.Field(&t.Amount, validation.NotNil),
	)
}

func (b *CheckBalance) ValidateCheckBalance() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Name, validation.Required),
		validation.Field(&b.Credential, validation.Required),
	)
}

// InitialDepositMinor converts the wire amount to ledger minor units.
// Amount sign policy is the engine's; this is a pure unit conversion.
func (a *CreateAccount) InitialDepositMinor(precision float64) int64 {
	return model.ToMinorUnits(*a.InitialDeposit, precision)
}

// AmountMinor converts the wire amount to ledger minor units.
func (t *MakePayment) AmountMinor(precision float64) int64 {
	return model.ToMinorUnits(*t.Amount, precision)
}
