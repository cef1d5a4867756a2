package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kdiallo/rianterm/internal/auth"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [callback-url]",
	Short: "Sign in through the identity broker without starting the TUI",
	Long: "Opens the identity broker in your browser, then exchanges the token from the\n" +
		"callback URL the broker redirects to. Pass the callback URL as an argument, or\n" +
		"run without one to be prompted for it.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()
		ctx := cmd.Context()

		fragment := ""
		if len(args) == 1 {
			fragment = args[0]
		}

		if fragment == "" {
			brokerURL, err := d.session.BeginLogin(ctx, "/dashboard")
			if err != nil {
				fmt.Fprintln(os.Stderr, "Could not open a browser. Visit this URL yourself:")
			} else {
				fmt.Println("Opened the identity broker in your browser:")
			}
			fmt.Println(" ", brokerURL)
			fmt.Println()
			fmt.Print("Paste the URL you were redirected to: ")

			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read callback URL: %w", err)
			}
			fragment = strings.TrimSpace(line)
		}

		identity, err := d.session.ExchangeFragment(ctx, fragment)
		if err != nil {
			if errors.Is(err, auth.ErrNoToken) {
				return fmt.Errorf("that URL has no session token; paste the full URL the broker redirected you to")
			}
			return fmt.Errorf("sign in: %w", err)
		}

		fmt.Printf("Signed in as %s <%s>\n", identity.Name, identity.Email)
		return nil
	},
}
