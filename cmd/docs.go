package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// page is where a command's doc page sits in the just-the-docs navigation
// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
type page struct {
	title       string
	parent      string
	grandParent string
	navOrder    int
	hasChildren bool
}

// frontMatter returns the YAML heading just-the-docs needs at the top of the page
func (p page) frontMatter() string {
	var b strings.Builder
	b.WriteString("---\nlayout: default\n")
	fmt.Fprintf(&b, "title: %s\n", p.title)
	if p.parent != "" {
		fmt.Fprintf(&b, "parent: %s\n", p.parent)
	}
	if p.grandParent != "" {
		fmt.Fprintf(&b, "grand_parent: %s\n", p.grandParent)
	}
	fmt.Fprintf(&b, "nav_order: %d\n", p.navOrder)
	if p.hasChildren {
		b.WriteString("has_children: true\n")
	}
	if p.parent == "" {
		b.WriteString("permalink: /\n")
	}
	b.WriteString("---\n")
	return b.String()
}

// pages maps the base Markdown file name of each documented command to its page.
// Commands are ordered the way cobra lists them
func pages(root *cobra.Command) map[string]page {
	found := map[string]page{}

	var walk func(c *cobra.Command, order int)
	walk = func(c *cobra.Command, order int) {
		p := page{title: c.Name(), navOrder: order}
		if parent := c.Parent(); parent != nil {
			p.parent = parent.Name()
			if grand := parent.Parent(); grand != nil {
				p.grandParent = grand.Name()
			}
		}

		children := documented(c)
		p.hasChildren = len(children) > 0
		found[baseName(c)] = p

		for i, child := range children {
			walk(child, i)
		}
	}
	walk(root, 0)
	return found
}

// documented returns the subcommands that cobra writes a doc page for
func documented(c *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, sub := range c.Commands() {
		if sub.IsAvailableCommand() && !sub.IsAdditionalHelpTopicCommand() {
			cmds = append(cmds, sub)
		}
	}
	return cmds
}

// baseName is the name of a command's doc file without its extension
func baseName(c *cobra.Command) string {
	return strings.ReplaceAll(c.CommandPath(), " ", "_")
}

// docsCmd is for writing the Markdown documentation of every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for each command",
	Run:    func(cmd *cobra.Command, args []string) { fatal(docsExec(cmd, args)) },
	Args:   cobra.MaximumNArgs(1),
	Hidden: true,
}

// docsExec writes a Markdown page, with a just-the-docs heading, for every visible command
func docsExec(cmd *cobra.Command, args []string) error {
	dir := "./docs"
	if len(args) > 0 {
		dir = args[0]
	}

	found := pages(RootCmd)
	prepend := func(filename string) string {
		if p, ok := found[trimExt(filename)]; ok {
			return p.frontMatter()
		}
		return ""
	}

	RootCmd.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(RootCmd, dir, prepend, linkHandler); err != nil {
		return fmt.Errorf("failed to write docs to %s: %w", dir, err)
	}
	return nil
}

// linkHandler returns the URL to a documentation page. The root command's page is the site's index
func linkHandler(filename string) string {
	if base := trimExt(filename); base != RootCmd.Name() {
		return base
	}
	return "/"
}

func trimExt(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
