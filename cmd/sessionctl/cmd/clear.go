package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/sudostake/onboard/internal/session"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored dashboard session",
	Run: func(cmd *cobra.Command, args []string) {
		store := session.NewFileStore(afero.NewOsFs(), stateDir)
		session.NewCodec(store).Clear()
		fmt.Println("session slot cleared")
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
