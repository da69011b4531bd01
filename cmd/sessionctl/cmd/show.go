package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/sudostake/onboard/internal/session"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored dashboard session",
	Run: func(cmd *cobra.Command, args []string) {
		store := session.NewFileStore(afero.NewOsFs(), stateDir)
		sess, ok := session.NewCodec(store).Load()
		if !ok {
			fmt.Println("no valid session stored")
			return
		}

		fmt.Printf("wallet:     %s\n", sess.WalletType)
		if sess.WalletName != "" {
			fmt.Printf("account:    %s\n", sess.WalletName)
		}
		fmt.Printf("address:    %s\n", sess.Address)
		fmt.Printf("chain:      %s (%s)\n", sess.ChainDisplay, sess.ChainID)
		fmt.Printf("network:    %s\n", sess.Network)
		fmt.Printf("signed in:  %s\n", sess.SignedInAt)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
