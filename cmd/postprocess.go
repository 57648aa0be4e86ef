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
	"github.com/spf13/cobra"

	"github.com/artracfd/gocfd/internal/caseinput"
	"github.com/artracfd/gocfd/internal/ensight"
	"github.com/artracfd/gocfd/internal/ibm"
	"github.com/artracfd/gocfd/internal/logging"
	"github.com/artracfd/gocfd/internal/restart"
)

var (
	postRestartDir  string
	postRestartName string
	postOutputDir   string
)

// postprocessCmd reloads a restart checkpoint and re-exports it to EnSight
// without advancing the solution, for regenerating output after a solve or
// switching to a different postprocessing directory.
var postprocessCmd = &cobra.Command{
	Use:   "postprocess",
	Short: "Re-export a restart checkpoint to EnSight output",
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, err := loadCase()
		if err != nil {
			return err
		}
		resolved, part, bodies, err := caseinput.Build(cf)
		if err != nil {
			return err
		}

		st, err := restart.Read(postRestartDir, postRestartName, resolved.Space.NMax)
		if err != nil {
			return err
		}

		if len(st.Bodies) > 0 {
			restored := make([]ibm.Body, len(st.Bodies))
			for i, s := range st.Bodies {
				restored[i] = s
			}
			bodies = restored
		}
		box := ibm.Bounds{
			KMin: part.Boxes[12].KSub, KMax: part.Boxes[12].KSup,
			JMin: part.Boxes[12].JSub, JMax: part.Boxes[12].JSup,
			IMin: part.Boxes[12].ISub, IMax: part.Boxes[12].ISup,
		}
		ibm.Classify(resolved.Space, bodies, box)

		exporter, err := ensight.New(postOutputDir)
		if err != nil {
			return err
		}
		if err := exporter.Write(resolved.Space, st.Buf, resolved.Model, part, st.Step, st.Time); err != nil {
			return err
		}

		logging.Default().Info("postprocess complete: step=%d t=%10.5f -> %s", st.Step, st.Time, postOutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postprocessCmd)
	postprocessCmd.Flags().StringVar(&postRestartDir, "restartDir", "./restart", "directory the checkpoint was written into")
	postprocessCmd.Flags().StringVar(&postRestartName, "name", "final", "checkpoint base name (without .particle/.field)")
	postprocessCmd.Flags().StringVar(&postOutputDir, "outputDir", "./output", "directory to write EnSight output into")
}
