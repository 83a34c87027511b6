package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"digitalwill/internal/app/workspace"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is signed in",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ws := workspace.MustFrom(cmd.Context())
		out := cmd.OutOrStdout()

		sess, ok := ws.Session().Current()
		if !ok {
			fmt.Fprintln(out, "Not signed in")
			return nil
		}

		fmt.Fprintf(out, "Signed in as %s <%s>\n", sess.Name, sess.Email)
		if d, err := ws.Dashboard(); err == nil {
			fmt.Fprintf(out, "Documents: %d  Cryptocurrencies: %d  Nominees: %d  Contacts: %d\n",
				d.Stats.Documents, d.Stats.Cryptocurrencies, d.Stats.Nominees, d.Stats.Contacts)
		}
		return nil
	},
}
