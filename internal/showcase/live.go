package showcase

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/stephen9412/primitives/pkg/primitives"
	"github.com/stephen9412/primitives/pkg/render"
	"github.com/stephen9412/primitives/pkg/ui"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// liveRequest is one re-render request from the client.
type liveRequest struct {
	Content string `json:"content"`
	Side    string `json:"side"`
	Open    bool   `json:"open"`
}

// liveResponse carries the re-rendered fragment back.
type liveResponse struct {
	HTML string `json:"html"`
}

// handleLive re-renders the tooltip for every message on the socket,
// demonstrating provider-driven updates over a live connection.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var req liveRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live socket closed: %v", err)
			}
			return
		}

		if req.Side == "" {
			req.Side = "top"
		}

		html, err := renderLiveTooltip(req)
		if err != nil {
			_ = conn.WriteJSON(liveResponse{HTML: ""})
			continue
		}

		payload, err := json.Marshal(liveResponse{HTML: html})
		if err != nil {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func renderLiveTooltip(req liveRequest) (string, error) {
	owner := primitives.NewOwner(nil)
	defer owner.Dispose()

	var html string
	var err error
	owner.StartRender()
	primitives.WithOwner(owner, func() {
		node := ui.Tooltip(
			ui.TooltipContent(req.Content),
			ui.TooltipSide(req.Side),
			ui.TooltipOpen(req.Open),
		)
		html, err = render.NewRenderer(render.Config{}).RenderToString(node)
	})
	return html, err
}
