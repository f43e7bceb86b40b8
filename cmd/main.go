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

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pesa-ledger/pesa"
	"github.com/pesa-ledger/pesa/config"
)

// Cli represents the CLI application, encapsulating the root Cobra command.
type Cli struct {
	cmd *cobra.Command
}

// pesaInstance holds the engine instance and its configuration, shared
// by the subcommands after preRun has initialized them.
type pesaInstance struct {
	pesa *pesa.Pesa
	cnf  *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the ledger engine
// before any command runs.
func preRun(app *pesaInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		app.pesa = pesa.New(pesa.NewLedger())
		app.cnf = cnf

		return nil
	}
}

// NewCLI creates the command-line interface for the ledger service.
// It sets up the root command and the server subcommand.
func NewCLI() *Cli {
	var configFile string
	p := &pesaInstance{}

	var rootCmd = &cobra.Command{
		Use:   "pesa",
		Short: "In-memory ledger service",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./pesa.json", "Configuration file for the ledger service")
	rootCmd.PersistentPreRunE = preRun(p, &configFile)

	rootCmd.AddCommand(serverCommands(p))

	return &Cli{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Cli) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
