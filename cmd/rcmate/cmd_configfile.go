package main

import (
	"fmt"

	"rcmate/internal/ui"
)

type ConfigFileCmd struct{}

func (c *ConfigFileCmd) Run() error {
	driver, err := newDriver()
	if err != nil {
		return err
	}

	path, err := driver.ConfigFilePath()
	if err != nil {
		return errEngineMissing(err)
	}
	fmt.Fprintln(ui.Output, path)
	return nil
}
