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

	"github.com/spf13/cobra"

	"github.com/artracfd/gocfd/internal/caseinput"
	"github.com/artracfd/gocfd/internal/ibm"
)

// preprocessCmd validates a case file and reports the domain geometry it
// resolves to, without running a solve. Generalizes InputParameters2D's
// Print-and-exit pattern in cmd/2D.go's processInput into its own
// subcommand instead of a pre-solve side effect.
var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Validate a case file and report the resolved grid and body classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, err := loadCase()
		if err != nil {
			return err
		}
		cf.Print()

		resolved, part, bodies, err := caseinput.Build(cf)
		if err != nil {
			return err
		}
		sp := resolved.Space
		fmt.Printf("grid: %d x %d x %d nodes (ng=%d), %d total\n", sp.IMax, sp.JMax, sp.KMax, sp.NG, sp.NMax)

		box := ibm.Bounds{
			KMin: part.Boxes[12].KSub, KMax: part.Boxes[12].KSup,
			JMin: part.Boxes[12].JSub, JMax: part.Boxes[12].JSup,
			IMin: part.Boxes[12].ISub, IMax: part.Boxes[12].ISup,
		}
		ibm.Classify(sp, bodies, box)

		counts := map[string]int{}
		for _, fl := range sp.Flag {
			counts[fl.String()]++
		}
		for _, name := range []string{"fluid", "solid", "ghost", "exterior"} {
			fmt.Printf("%-10s %d\n", name, counts[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}
