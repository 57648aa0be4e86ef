/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artracfd/gocfd/internal/caseinput"
)

var caseFile string

// rootCmd is the base command every subcommand (solve, preprocess,
// postprocess, interactive) attaches to, the same AddCommand pattern
// cmd/1D.go and cmd/2D.go used against a rootCmd this package now defines
// itself.
var rootCmd = &cobra.Command{
	Use:   "gocfd",
	Short: "A finite-difference immersed-boundary compressible flow solver",
	Long: `gocfd solves the compressible Navier-Stokes equations on a uniform
Cartesian grid with embedded rigid bodies handled by a ghost-cell
immersed-boundary method.`,
}

// Execute runs the root command, printing a non-nil error and exiting with
// code 1; main.go's only job is to call this.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&caseFile, "case", caseinput.DefaultPath, "path to the YAML case file")
}

func loadCase() (*caseinput.CaseFile, error) {
	cf, err := caseinput.Load(caseFile)
	if err != nil {
		return nil, err
	}
	caseinput.ApplyEnvOverrides(cf)
	return cf, nil
}
