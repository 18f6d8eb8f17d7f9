package main

import (
	"os"
	"os/signal"
	"stegmsg/internal/cli"
	"syscall"
)

func main() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	onKill := func(c chan os.Signal) {
		<-c
		cli.StopProfiling()
		os.Exit(0)
	}

	go onKill(c)

	err := cli.RootCommand().Execute()
	cli.StopProfiling()
	if err != nil {
		os.Exit(1)
	}
}
