package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/beesweeper-server/internal/beesweeper"
	"github.com/vancomm/beesweeper-server/internal/session"
)

// ConnectWS upgrades to a websocket. Each text message holds newline
// separated commands; the reply is the game after executing them.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.owned(w, r)
	if !ok {
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Warn("unable to upgrade connection")
		return
	}
	defer conn.Close()

	log := g.log.WithField("game_id", s.ID)
	log.Debug("websocket connected")

	if err := g.wsRunGameLoop(conn, s); err != nil {
		if websocket.IsUnexpectedCloseError(err,
			websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			log.WithError(err).Warn("websocket closed")
			return
		}
	}
	log.Debug("websocket disconnected")
}

func (g GameHandler) wsRunGameLoop(conn *websocket.Conn, s *session.Session) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		var (
			dto     BatchDTO
			execErr error
		)
		s.Do(func(game *beesweeper.Game) {
			dto.Results, execErr = executeBatch(game, string(buf))
			dto.Game = NewGameDTO(s.ID, game)
		})

		if execErr != nil {
			g.log.WithFields(logrus.Fields{
				"game_id": s.ID,
				"applied": len(dto.Results),
				"error":   execErr,
			}).Debug("command rejected")
			dto.Error = execErr.Error()
		}

		if err := conn.WriteJSON(&dto); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}
