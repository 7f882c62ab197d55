// Command testbot joins a channel, keeps the connection alive and echoes
// chat traffic to stdout, greeting anyone who joins.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/gkbrk/hackchat-go/hackchat"
)

func main() {
	nick := flag.String("nick", "TestBot", "nickname to join with")
	channel := flag.String("channel", "botDev", "channel to join")
	endpoint := flag.String("endpoint", "", "chat server URL (defaults to the public hack.chat endpoint)")
	pingInterval := flag.Duration("ping-interval", time.Minute, "keep-alive interval")
	flag.Parse()

	logger := slog.Default()

	client, err := hackchat.NewClient(hackchat.Config{
		Nick:              *nick,
		Channel:           *channel,
		Endpoint:          *endpoint,
		KeepAliveInterval: *pingInterval,
		Logger:            logger,
	})
	if err != nil {
		logger.Error("connect failed", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	client.StartKeepAlive()

	for event, err := range client.Events().All() {
		if err != nil {
			logger.Error("event stream failed", "error", err)
			os.Exit(1)
		}

		switch e := event.(type) {
		case hackchat.Message:
			fmt.Printf("<%s> %s\n", e.Nick, e.Text)
		case hackchat.JoinRoom:
			if e.Nick == *nick {
				continue
			}
			greeting := fmt.Sprintf("Welcome to the chat %s!", e.Nick)
			if err := client.SendMessage(greeting); err != nil {
				logger.Error("greeting failed", "nick", e.Nick, "error", err)
			}
		case hackchat.LeaveRoom:
			fmt.Printf("* %s left\n", e.Nick)
		case hackchat.OnlineSet:
			fmt.Printf("* online: %v\n", e.Nicks)
		case hackchat.Info:
			fmt.Printf("* %s\n", e.Text)
		}
	}

	logger.Info("server closed the connection")
}
