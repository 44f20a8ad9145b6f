package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sharebox/sharebox/internal/client/chat"
	"github.com/sharebox/sharebox/internal/client/guard"
	pkgapi "github.com/sharebox/sharebox/pkg/api"
)

// Chats prints the conversation inbox
func (c *Cli) Chats(ctx context.Context) error {
	if err := c.requireView(ctx, guard.ViewChats); err != nil {
		return err
	}

	conversations, err := c.api.Conversations(ctx)
	if err != nil {
		return err
	}
	if len(conversations) == 0 {
		fmt.Println("No conversations.")
		return nil
	}
	for _, conv := range conversations {
		last := ""
		if conv.LastMessage != nil {
			last = conv.LastMessage.Text
		}
		unread := ""
		if conv.UnreadCount > 0 {
			unread = fmt.Sprintf(" (%d unread)", conv.UnreadCount)
		}
		fmt.Printf("  %s  %-20s  %s%s\n", conv.Peer.ID, conv.Peer.Username, last, unread)
	}
	return nil
}

// Chat opens a conversation with a user. A watcher polls for new messages
// in the background while the prompt loop sends; closing the prompt stops
// the watcher before the command returns, so no late poll prints into a
// conversation the user already left.
func (c *Cli) Chat(ctx context.Context, userArg string) error {
	if err := c.requireView(ctx, guard.ViewChatRoom); err != nil {
		return err
	}
	peer, err := parseID(userArg)
	if err != nil {
		return err
	}

	me := c.store.CurrentUser()

	var lastSeen pkgapi.ID
	printNew := func(messages []pkgapi.Message) {
		for _, m := range messages {
			if m.ID.Int64() <= lastSeen.Int64() {
				continue
			}
			lastSeen = m.ID
			who := m.SenderID.String()
			if me != nil && m.SenderID.Int64() == me.ID.Int64() {
				who = "you"
			}
			fmt.Printf("  [%s] %s: %s\n", m.SentAt.Format("15:04"), who, m.Text)
		}
	}

	watchCtx, stop := context.WithCancel(ctx)
	defer stop()

	watcher := chat.NewWatcher(c.api, peer, c.cfg.PollInterval, printNew, func(err error) {
		slog.Warn("chat poll failed", "error", err)
	})
	go watcher.Run(watchCtx)

	fmt.Println("Type a message; an empty line quits.")
	for {
		text, ok, err := c.dialogs.Prompt(ctx, "Chat", "Message")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := c.api.SendMessage(ctx, peer, text); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
}
