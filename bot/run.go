package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// Run opens the gateway connection and blocks until the process is
// signalled to stop.
func (b *Bot) Run() {
	if err := b.Session.Open(); err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
