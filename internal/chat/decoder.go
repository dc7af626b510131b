package chat

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// Event is one logical event from an assistant stream: either a text
// chunk or the terminal payload carrying recommendations.
type Event struct {
	Chunk           string
	Done            bool
	Recommendations []model.BookRecord
}

// wireEvent is the on-the-wire shape of a stream event.
type wireEvent struct {
	Chunk           string               `json:"chunk,omitempty"`
	Done            bool                 `json:"done,omitempty"`
	Recommendations []wireRecommendation `json:"recommendations,omitempty"`
}

// wireRecommendation is a recommended book as the assistant sends it.
// The page count travels as "pageCount", unlike library records.
type wireRecommendation struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Cover     string `json:"cover,omitempty"`
	Genre     string `json:"genre,omitempty"`
	PageCount int    `json:"pageCount,omitempty"`
}

func (w wireRecommendation) record() model.BookRecord {
	return model.NewRecord(model.Book{
		ISBN:       w.ISBN,
		Title:      w.Title,
		Author:     w.Author,
		Cover:      w.Cover,
		Genre:      w.Genre,
		TotalPages: w.PageCount,
	}, "")
}

// EventDecoder reads `data: {...}` events from a byte stream. It
// buffers incoming bytes and emits an event only once a complete line
// has arrived — transport chunk boundaries carry no meaning.
type EventDecoder struct {
	br *bufio.Reader
}

// NewEventDecoder wraps r for incremental event decoding.
func NewEventDecoder(r io.Reader) *EventDecoder {
	return &EventDecoder{br: bufio.NewReader(r)}
}

// Next returns the next decoded event. Lines that are blank, are not
// data lines, or carry unparseable JSON are skipped. Returns io.EOF
// once the stream ends.
func (d *EventDecoder) Next() (Event, error) {
	for {
		line, err := d.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return Event{}, err
		}
		atEOF := err == io.EOF

		if ev, ok := parseEventLine(line); ok {
			return ev, nil
		}
		if atEOF {
			return Event{}, io.EOF
		}
	}
}

// parseEventLine decodes one "data: {...}" line.
func parseEventLine(line string) (Event, bool) {
	line = strings.TrimRight(line, "\r\n")
	payload, ok := strings.CutPrefix(line, "data: ")
	if !ok {
		return Event{}, false
	}
	var we wireEvent
	if err := json.Unmarshal([]byte(payload), &we); err != nil {
		return Event{}, false
	}
	ev := Event{Chunk: we.Chunk, Done: we.Done}
	for _, w := range we.Recommendations {
		ev.Recommendations = append(ev.Recommendations, w.record())
	}
	return ev, true
}
