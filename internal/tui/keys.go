package tui

import "github.com/charmbracelet/bubbles/key"

// browserKeys are the library browser bindings.
type browserKeys struct {
	quit     key.Binding
	details  key.Binding
	progress key.Binding
	remove   key.Binding
	status   key.Binding
	filter   key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		progress: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "progress"),
		),
		remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
		status: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status filter"),
		),
		filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
	}
}

// chatKeys are the chat view bindings.
type chatKeys struct {
	quit key.Binding
	send key.Binding
	add  key.Binding
}

func newChatKeys() chatKeys {
	return chatKeys{
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		add: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add last pick"),
		),
	}
}
