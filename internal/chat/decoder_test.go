package chat_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/blackwell-systems/readingctl/internal/chat"
)

func collect(t *testing.T, r io.Reader) []chat.Event {
	t.Helper()
	dec := chat.NewEventDecoder(r)
	var events []chat.Event
	for {
		ev, err := dec.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		events = append(events, ev)
	}
}

const sampleStream = "data: {\"chunk\":\"Here are \"}\n" +
	"data: {\"chunk\":\"some fantasy \"}\n" +
	"\n" +
	"data: {\"chunk\":\"books:\"}\n" +
	"data: {\"done\":true,\"recommendations\":[{\"isbn\":\"222\",\"title\":\"Mistborn\",\"author\":\"Brandon Sanderson\",\"genre\":\"Fantasy\",\"pageCount\":541}]}\n"

func TestDecoder_Events(t *testing.T) {
	events := collect(t, strings.NewReader(sampleStream))
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d: %+v", len(events), events)
	}
	if events[0].Chunk != "Here are " || events[2].Chunk != "books:" {
		t.Errorf("chunks decoded wrong: %+v", events)
	}
	last := events[3]
	if !last.Done || len(last.Recommendations) != 1 {
		t.Fatalf("terminal event = %+v", last)
	}
	rec := last.Recommendations[0]
	if rec.ISBN != "222" || rec.TotalPages != 541 {
		t.Errorf("recommendation = %+v", rec)
	}
	if rec.Status != "to read" || rec.CurrentPage != 0 {
		t.Errorf("recommendation not a fresh to-read candidate: %+v", rec)
	}
}

// Transport chunk boundaries must not matter: one byte at a time
// produces the same events as one big read.
func TestDecoder_ByteAtATime(t *testing.T) {
	whole := collect(t, strings.NewReader(sampleStream))
	chopped := collect(t, iotest.OneByteReader(strings.NewReader(sampleStream)))
	if len(whole) != len(chopped) {
		t.Fatalf("event count differs: %d vs %d", len(whole), len(chopped))
	}
	for i := range whole {
		if whole[i].Chunk != chopped[i].Chunk || whole[i].Done != chopped[i].Done {
			t.Errorf("event %d differs: %+v vs %+v", i, whole[i], chopped[i])
		}
	}
}

func TestDecoder_SkipsNoise(t *testing.T) {
	stream := ": keepalive comment\n" +
		"\n" +
		"data: not json at all\n" +
		"data: {\"chunk\":\"ok\"}\n"
	events := collect(t, strings.NewReader(stream))
	if len(events) != 1 || events[0].Chunk != "ok" {
		t.Errorf("events = %+v", events)
	}
}

func TestDecoder_CRLFLines(t *testing.T) {
	stream := "data: {\"chunk\":\"a\"}\r\ndata: {\"chunk\":\"b\"}\r\n"
	events := collect(t, strings.NewReader(stream))
	if len(events) != 2 || events[0].Chunk != "a" || events[1].Chunk != "b" {
		t.Errorf("events = %+v", events)
	}
}

func TestDecoder_FinalLineWithoutNewline(t *testing.T) {
	stream := "data: {\"chunk\":\"tail\"}" // no trailing \n
	events := collect(t, strings.NewReader(stream))
	if len(events) != 1 || events[0].Chunk != "tail" {
		t.Errorf("events = %+v", events)
	}
}

func TestDecoder_ReadErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	dec := chat.NewEventDecoder(iotest.ErrReader(boom))
	_, err := dec.Next()
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
