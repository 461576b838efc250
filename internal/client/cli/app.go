// Package cli implements the blog command-line client on top of
// client.HTTPClient.
package cli

import (
	"io"

	"github.com/William0209/backend-last/internal/client/client"
	"github.com/urfave/cli/v2"
)

const defaultServer = "http://localhost:3000"

// ClientFactory builds an API client for a server address and token.
type ClientFactory func(server, token string) (client.Client, error)

// NewHTTPClientFactory is the ClientFactory used by the binary.
func NewHTTPClientFactory(server, token string) (client.Client, error) {
	c, err := client.NewHTTPClient(server, client.WithToken(token))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewApp returns the command tree. Command output goes to out.
func NewApp(out io.Writer, newClient ClientFactory) *cli.App {
	return &cli.App{
		Name:   "blog",
		Usage:  "Talk to the blog API",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "Base URL of the blog server",
				Value:   defaultServer,
				EnvVars: []string{"BLOG_SERVER"},
			},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "Session token returned by login",
				EnvVars: []string{"BLOG_TOKEN"},
			},
		},
		Commands: []*cli.Command{
			registerCmd(newClient),
			loginCmd(newClient),
			postsCmd(newClient),
		},
	}
}

func clientFrom(ctx *cli.Context, newClient ClientFactory) (client.Client, error) {
	return newClient(ctx.String("server"), ctx.String("token"))
}
