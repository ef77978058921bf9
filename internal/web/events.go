package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"maragu.dev/gomponents"
)

// eventStream writes datastar server-sent events to one response.
type eventStream struct {
	w http.ResponseWriter
}

func newEventStream(w http.ResponseWriter) *eventStream {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	return &eventStream{w: w}
}

// patchElements morphs the rendered node into the element with its id.
func (s *eventStream) patchElements(n gomponents.Node) error {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return err
	}
	lines := strings.Split(b.String(), "\n")
	for i, l := range lines {
		lines[i] = "elements " + l
	}
	return s.send("datastar-patch-elements", lines)
}

// patchSignals merges v into the page signals.
func (s *eventStream) patchSignals(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.send("datastar-patch-signals", []string{"signals " + string(b)})
}

func (s *eventStream) send(event string, lines []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "event: %s\n", event)
	for _, l := range lines {
		fmt.Fprintf(&b, "data: %s\n", l)
	}
	b.WriteString("\n")
	if _, err := s.w.Write([]byte(b.String())); err != nil {
		return err
	}
	if f, ok := s.w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
