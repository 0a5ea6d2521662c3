package batch

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/terra-rs/save-codec/internal/codec"
	"github.com/terra-rs/save-codec/internal/logging"
)

// ProgressEvent is one line of the websocket stream a `terra-save watch`
// client receives while a corpus conversion runs.
type ProgressEvent struct {
	RunID    string `json:"runId"`
	Path     string `json:"path"`
	Version  int32  `json:"version"`
	Passed   bool   `json:"passed"`
	Error    string `json:"error,omitempty"`
	Done     bool   `json:"done"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WatchHandler upgrades an HTTP request to a websocket and streams a
// round-trip run over dir, one ProgressEvent per file followed by a
// terminating Done event.
func WatchHandler(dir string, cat codec.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Error("websocket upgrade failed", logging.F("err", err))
			return
		}
		defer conn.Close()

		runID := uuid.New()

		paths, walkErr := findDplrFiles(dir)
		if walkErr != nil {
			sendEvent(conn, ProgressEvent{RunID: runID.String(), Error: walkErr.Error(), Done: true})
			return
		}

		for _, path := range paths {
			res := roundTripOne(path, cat)
			evt := ProgressEvent{
				RunID:   runID.String(),
				Path:    res.Path,
				Version: res.Version,
				Passed:  res.Passed,
			}
			if res.Err != nil {
				evt.Error = res.Err.Error()
			}
			if err := sendEvent(conn, evt); err != nil {
				return
			}
		}

		sendEvent(conn, ProgressEvent{RunID: runID.String(), Done: true})
	}
}

func sendEvent(conn *websocket.Conn, evt ProgressEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

