package main

import (
	"fmt"

	"rcmate/internal/ui"
)

type VersionCmd struct {
	Check string `help:"Fail unless the installed rclone is at least this version" placeholder:"1.60.0"`
}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(ui.Output, "rcmate version %s\n", version)

	driver, err := newDriver()
	if err != nil {
		return err
	}

	engineVersion, err := driver.Version()
	if err != nil {
		return errEngineMissing(err)
	}
	fmt.Fprintf(ui.Output, "rclone version %s\n", engineVersion)

	if c.Check != "" {
		ok, err := driver.VersionAtLeast(c.Check)
		if err != nil {
			return errEngineMissing(err)
		}
		if !ok {
			return errVersionTooOld(engineVersion, c.Check)
		}
		ui.PrintSuccess(fmt.Sprintf("rclone %s satisfies >= %s", engineVersion, c.Check))
	}
	return nil
}
