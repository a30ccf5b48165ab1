package main

import "context"

type StatsCmd struct {
	ServerFlags
}

func (c *StatsCmd) Run() error {
	client, err := c.newClient()
	if err != nil {
		return err
	}

	result, err := client.CoreStats(context.Background())
	if err != nil {
		return errCommandFailed(err)
	}
	return printJSON(result)
}
