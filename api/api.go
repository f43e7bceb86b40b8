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
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pesa-ledger/pesa"
	"github.com/pesa-ledger/pesa/api/middleware"
	"github.com/pesa-ledger/pesa/config"
	"github.com/pesa-ledger/pesa/internal/apierror"
)

type Api struct {
	pesa      *pesa.Pesa
	router    *gin.Engine
	precision float64
}

func (a Api) Router() *gin.Engine {
	router := a.router
	router.POST("/accounts", a.CreateAccount)
	router.POST("/payments", a.MakePayment)
	router.POST("/balances", a.CheckBalance)

	router.GET("/reports/summary", a.TransactionSummary)
	router.GET("/reports/chart", a.TransactionChart)
	return a.router
}

func NewAPI(p *pesa.Pesa) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}
	r := gin.Default()
	r.Use(middleware.RateLimitMiddleware(conf))
	if conf.Server.Secure {
		r.Use(middleware.SecretKeyAuthMiddleware())
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, "server running...")
	})

	return &Api{pesa: p, router: r, precision: conf.Ledger.Precision}
}

// respondError writes the stable status/code mapping for an engine
// failure. Anything outside the taxonomy is a 500.
func respondError(c *gin.Context, err error) {
	status := apierror.MapErrorToHTTPStatus(err)
	if apiErr, ok := err.(apierror.APIError); ok {
		c.JSON(status, gin.H{"error": apiErr.Message, "code": apiErr.Code})
		return
	}
	logrus.Error(err)
	c.JSON(status, gin.H{"error": err.Error()})
}
