package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/blackwell-systems/readingctl/internal/chat"
	"github.com/blackwell-systems/readingctl/internal/model"
)

// ChatOptions configures an interactive chat session.
type ChatOptions struct {
	Assistant chat.Assistant
	Library   chat.RecordAdder
	UserID    string
	Streaming bool
	Styles    Styles
}

// Messages driving the chat event loop. Streamed replies arrive as one
// message per decoded event so chunks render as they land.
type (
	streamOpenedMsg struct{ body io.ReadCloser }
	streamEventMsg  struct{ event chat.Event }
	streamClosedMsg struct{}
	streamErrMsg    struct{ err error }
	askDoneMsg      struct {
		reply chat.Reply
		err   error
	}
	addDoneMsg struct {
		title string
		err   error
	}
)

// chatModel is the interactive chat view. It mirrors the transcript
// semantics of chat.Session but drives each step from the bubbletea
// event loop, so a streamed reply updates the screen per chunk.
type chatModel struct {
	opts ChatOptions
	keys chatKeys

	input textinput.Model
	vp    viewport.Model
	spin  spinner.Model

	messages []model.ChatMessage
	busy     bool
	// streamIdx is the placeholder message index while streaming, -1
	// otherwise.
	streamIdx int
	body      io.ReadCloser
	dec       *chat.EventDecoder
	pending   string // query held for the non-streaming fallback

	ready bool
}

// RunChat launches the interactive chat view.
func RunChat(opts ChatOptions) error {
	ti := textinput.New()
	ti.Placeholder = "Ask for a book recommendation..."
	ti.Focus()
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Typing

	m := chatModel{
		opts:      opts,
		keys:      newChatKeys(),
		input:     ti,
		spin:      sp,
		messages:  chat.DefaultMessages(),
		streamIdx: -1,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running chat: %w", err)
	}
	return nil
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		inputHeight := 3
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - inputHeight
		}
		m.input.Width = msg.Width - 4
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.closeStream()
			return m, tea.Quit

		case key.Matches(msg, m.keys.send):
			if m.busy {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.messages = append(m.messages, model.NewMessage(model.RoleUser, text))
			m.busy = true
			m.pending = text
			m.refresh()
			if m.opts.Streaming {
				return m, tea.Batch(m.spin.Tick, m.openStream(text))
			}
			return m, tea.Batch(m.spin.Tick, m.ask(text))

		case key.Matches(msg, m.keys.add):
			if m.busy {
				return m, nil
			}
			if candidate, ok := m.lastRecommendation(); ok {
				m.busy = true
				return m, tea.Batch(m.spin.Tick, m.addToLibrary(candidate))
			}
			return m, nil
		}

	case streamOpenedMsg:
		m.body = msg.body
		m.dec = chat.NewEventDecoder(msg.body)
		m.messages = append(m.messages, model.NewMessage(model.RoleAssistant, ""))
		m.streamIdx = len(m.messages) - 1
		m.refresh()
		return m, m.readEvent()

	case streamEventMsg:
		if m.streamIdx < 0 {
			return m, nil
		}
		ev := msg.event
		if ev.Chunk != "" {
			m.messages[m.streamIdx].Content += ev.Chunk
		}
		if ev.Done {
			if len(ev.Recommendations) > 0 {
				m.messages[m.streamIdx].Recommendations = m.stamp(ev.Recommendations)
				if m.messages[m.streamIdx].Content == "" {
					m.messages[m.streamIdx].Content = chat.NoRecommendationsText
				}
			}
			m.finishStream()
			m.refresh()
			return m, nil
		}
		m.refresh()
		return m, m.readEvent()

	case streamClosedMsg:
		m.finishStream()
		m.refresh()
		return m, nil

	case streamErrMsg:
		// Roll the placeholder back and retry once over the plain path.
		if m.streamIdx >= 0 {
			m.messages = m.messages[:m.streamIdx]
		}
		m.finishStream()
		m.busy = true
		m.refresh()
		return m, m.ask(m.pending)

	case askDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.messages = append(m.messages, model.NewMessage(model.RoleAssistant, chat.ErrorReplyText))
		} else {
			m.messages = append(m.messages, m.replyMessage(msg.reply))
		}
		m.refresh()
		return m, nil

	case addDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.messages = append(m.messages, model.NewMessage(model.RoleAssistant,
				fmt.Sprintf("Sorry, I couldn't add %q to your library. Please try again later.", msg.title)))
		} else {
			m.messages = append(m.messages, model.NewMessage(model.RoleAssistant,
				fmt.Sprintf("I've added %q to your library!", msg.title)))
		}
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		m.refresh()
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m chatModel) View() string {
	if !m.ready {
		return "loading..."
	}
	prompt := m.opts.Styles.Subtle.Render("> ") + m.input.View()
	help := m.opts.Styles.Subtle.Render("enter send · ctrl+a add last pick · esc quit")
	return m.vp.View() + "\n" + prompt + "\n" + help
}

// refresh re-renders the transcript into the viewport and keeps it
// pinned to the newest message.
func (m *chatModel) refresh() {
	if !m.ready {
		return
	}
	m.vp.SetContent(m.renderTranscript())
	m.vp.GotoBottom()
}

func (m *chatModel) renderTranscript() string {
	st := m.opts.Styles
	wrapAt := m.vp.Width - 4
	if wrapAt < 20 {
		wrapAt = 20
	}

	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		switch msg.Role {
		case model.RoleUser:
			b.WriteString(st.UserMsg.Render("You"))
		default:
			b.WriteString(st.Header.Render("BookBot"))
		}
		b.WriteString("\n")
		b.WriteString(wordwrap.String(st.AssistantMsg.Render(msg.Content), wrapAt))
		b.WriteString("\n")
		for n, rec := range msg.Recommendations {
			line := fmt.Sprintf("  %d. %s by %s (%d pages)", n+1, rec.Title, rec.Author, rec.TotalPages)
			if ansi.StringWidth(line) > wrapAt {
				line = ansi.Truncate(line, wrapAt, "…")
			}
			b.WriteString(st.Highlight.Render(line))
			b.WriteString("\n")
		}
	}
	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(st.Typing.Render("BookBot is typing..."))
		b.WriteString("\n")
	}
	return b.String()
}

// lastRecommendation returns the first recommendation of the newest
// assistant message carrying any.
func (m *chatModel) lastRecommendation() (model.BookRecord, bool) {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if recs := m.messages[i].Recommendations; len(recs) > 0 {
			return recs[0], true
		}
	}
	return model.BookRecord{}, false
}

func (m *chatModel) openStream(text string) tea.Cmd {
	return func() tea.Msg {
		body, err := m.opts.Assistant.Stream(context.Background(), text, m.opts.UserID)
		if err != nil {
			return streamErrMsg{err: err}
		}
		return streamOpenedMsg{body: body}
	}
}

func (m *chatModel) readEvent() tea.Cmd {
	dec := m.dec
	return func() tea.Msg {
		ev, err := dec.Next()
		if err == io.EOF {
			return streamClosedMsg{}
		}
		if err != nil {
			return streamErrMsg{err: err}
		}
		return streamEventMsg{event: ev}
	}
}

func (m *chatModel) ask(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.opts.Assistant.Ask(context.Background(), text, m.opts.UserID)
		return askDoneMsg{reply: reply, err: err}
	}
}

func (m *chatModel) addToLibrary(candidate model.BookRecord) tea.Cmd {
	candidate.UserID = m.opts.UserID
	return func() tea.Msg {
		created, err := m.opts.Library.Add(context.Background(), candidate)
		title := candidate.Title
		if err == nil {
			title = created.Title
		}
		return addDoneMsg{title: title, err: err}
	}
}

func (m *chatModel) finishStream() {
	m.closeStream()
	m.streamIdx = -1
	m.busy = false
}

func (m *chatModel) closeStream() {
	if m.body != nil {
		_ = m.body.Close()
		m.body = nil
		m.dec = nil
	}
}

func (m *chatModel) replyMessage(reply chat.Reply) model.ChatMessage {
	content := reply.Message
	if len(reply.Recommendations) > 0 {
		if content == "" {
			content = chat.NoRecommendationsText
		}
		msg := model.NewMessage(model.RoleAssistant, content)
		msg.Recommendations = m.stamp(reply.Recommendations)
		return msg
	}
	if content == "" {
		content = "I couldn't find any specific recommendations at the moment."
	}
	return model.NewMessage(model.RoleAssistant, content)
}

func (m *chatModel) stamp(recs []model.BookRecord) []model.BookRecord {
	out := make([]model.BookRecord, len(recs))
	copy(out, recs)
	for i := range out {
		out[i].UserID = m.opts.UserID
		out[i].Status = model.StatusToRead
		out[i].CurrentPage = 0
	}
	return out
}
