package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/llmsdocs/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	SiteFlag
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(glob *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = filepath.Join(i.Site, config.DefaultFileName)
	}
	_, _ = fmt.Fprintf(glob.Stdout, "Writing configuration to %s\n", path)
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(glob.Stdout, "initialized successfully")
	return nil
}
