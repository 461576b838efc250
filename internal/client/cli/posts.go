package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
)

func postFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Post title", Required: true},
		&cli.StringFlag{Name: "content", Aliases: []string{"c"}, Usage: "Post content", Required: true},
	}
}

func postsCmd(newClient ClientFactory) *cli.Command {
	return &cli.Command{
		Name:  "posts",
		Usage: "Manage your posts",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a post",
				Flags: postFlags(),
				Action: func(ctx *cli.Context) error {
					c, err := clientFrom(ctx, newClient)
					if err != nil {
						return err
					}
					post, err := c.CreatePost(ctx.Context, ctx.String("title"), ctx.String("content"))
					if err != nil {
						return err
					}
					fmt.Fprintf(ctx.App.Writer, "Created post %s\n", post.ID)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List your posts",
				Action: func(ctx *cli.Context) error {
					c, err := clientFrom(ctx, newClient)
					if err != nil {
						return err
					}
					list, err := c.ListPosts(ctx.Context)
					if err != nil {
						return err
					}
					if len(list) == 0 {
						fmt.Fprintln(ctx.App.Writer, "No posts")
						return nil
					}

					tw := tabwriter.NewWriter(ctx.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tTITLE\tUPDATED")
					for _, p := range list {
						fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Title, p.UpdatedAt.Format(time.RFC3339))
					}
					return tw.Flush()
				},
			},
			{
				Name:      "update",
				Usage:     "Replace the title and content of a post",
				ArgsUsage: "<post-id>",
				Flags:     postFlags(),
				Action: func(ctx *cli.Context) error {
					id, err := postID(ctx)
					if err != nil {
						return err
					}
					c, err := clientFrom(ctx, newClient)
					if err != nil {
						return err
					}
					post, err := c.UpdatePost(ctx.Context, id, ctx.String("title"), ctx.String("content"))
					if err != nil {
						return err
					}
					fmt.Fprintf(ctx.App.Writer, "Updated post %s\n", post.ID)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a post",
				ArgsUsage: "<post-id>",
				Action: func(ctx *cli.Context) error {
					id, err := postID(ctx)
					if err != nil {
						return err
					}
					c, err := clientFrom(ctx, newClient)
					if err != nil {
						return err
					}
					if err := c.DeletePost(ctx.Context, id); err != nil {
						return err
					}
					fmt.Fprintln(ctx.App.Writer, "Post deleted")
					return nil
				},
			},
		},
	}
}

func postID(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one post id, got %d", ctx.NArg())
	}
	return ctx.Args().First(), nil
}
