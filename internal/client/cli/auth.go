package cli

import (
	"fmt"

	"github.com/William0209/backend-last/internal/shared"
	"github.com/urfave/cli/v2"
)

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "email",
			Aliases:  []string{"e"},
			Usage:    "Account email",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Account password (prompted when omitted)",
		},
	}
}

// password returns the --password value or prompts for one.
func password(ctx *cli.Context) ([]byte, error) {
	if p := ctx.String("password"); p != "" {
		return []byte(p), nil
	}
	return getPassword(ctx.App.Writer)
}

func registerCmd(newClient ClientFactory) *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create an account",
		Flags: credentialFlags(),
		Action: func(ctx *cli.Context) error {
			c, err := clientFrom(ctx, newClient)
			if err != nil {
				return err
			}

			pw, err := password(ctx)
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(pw)

			user, err := c.Register(ctx.Context, ctx.String("email"), string(pw))
			if err != nil {
				return err
			}

			fmt.Fprintf(ctx.App.Writer, "Registered %s (id %s)\n", user.Email, user.ID)
			return nil
		},
	}
}

func loginCmd(newClient ClientFactory) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in and print a session token",
		Flags: credentialFlags(),
		Action: func(ctx *cli.Context) error {
			c, err := clientFrom(ctx, newClient)
			if err != nil {
				return err
			}

			pw, err := password(ctx)
			if err != nil {
				return err
			}
			defer shared.WipeByteArray(pw)

			token, err := c.Login(ctx.Context, ctx.String("email"), string(pw))
			if err != nil {
				return err
			}

			fmt.Fprintln(ctx.App.Writer, token)
			return nil
		},
	}
}
