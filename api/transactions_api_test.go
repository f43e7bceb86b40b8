package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	model2 "github.com/pesa-ledger/pesa/api/model"
	"github.com/pesa-ledger/pesa/internal/request"
)

func TestMakePaymentAPI(t *testing.T) {
	router, engine, err := setupRouter()
	if err != nil {
		t.Fatalf("Failed to setup router: %v", err)
	}

	_, err = engine.CreateAccount("alice", "pw1", 10000)
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}
	_, err = engine.CreateAccount("bob", "pw2", 0)
	if err != nil {
		t.Fatalf("Failed to create account: %v", err)
	}

	tests := []struct {
		name         string
		payload      model2.MakePayment
		expectedCode int
		expectedErr  string
	}{
		{
			name: "Valid payment",
			payload: model2.MakePayment{
				Sender:     "alice",
				Credential: "pw1",
				Receiver:   "bob",
				Amount:     floatPtr(40),
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Wrong credential",
			payload: model2.MakePayment{
				Sender:     "alice",
				Credential: "wrongpw",
				Receiver:   "bob",
				Amount:     floatPtr(10),
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  "UNAUTHORIZED",
		},
		{
			name: "Unknown receiver",
			payload: model2.MakePayment{
				Sender:     "alice",
				Credential: "pw1",
				Receiver:   "ghost",
				Amount:     floatPtr(10),
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  "NOT_FOUND",
		},
		{
			name: "Non-positive amount",
			payload: model2.MakePayment{
				Sender:     "alice",
				Credential: "pw1",
				Receiver:   "bob",
				Amount:     floatPtr(0),
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_AMOUNT",
		},
		{
			name: "Insufficient funds",
			payload: model2.MakePayment{
				Sender:     "alice",
				Credential: "pw1",
				Receiver:   "bob",
				Amount:     floatPtr(5000),
			},
			expectedCode: http.StatusPaymentRequired,
			expectedErr:  "INSUFFICIENT_FUNDS",
		},
		{
			name: "Missing amount",
			payload: model2.MakePayment{
				Sender:     "alice",
				Credential: "pw1",
				Receiver:   "bob",
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payloadBytes, _ := request.ToJsonReq(&tt.payload)
			var response map[string]interface{}
			resp, _ := SetUpTestRequest(TestRequest{
				Payload:  payloadBytes,
				Response: &response,
				Method:   "POST",
				Route:    "/payments",
				Router:   router,
			})
			assert.Equal(t, tt.expectedCode, resp.Code)
			if tt.expectedErr != "" {
				assert.Equal(t, tt.expectedErr, response["code"])
			}
		})
	}

	// The one successful payment above moved 40.00 from alice to bob.
	alice, _ := engine.GetAccount("alice")
	bob, _ := engine.GetAccount("bob")
	assert.Equal(t, int64(6000), alice.Balance)
	assert.Equal(t, int64(4000), bob.Balance)
}
