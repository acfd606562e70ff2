package app

import (
	"github.com/vancomm/beesweeper-server/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.log, a.store, a.issuer, a.cfg.Game)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("GET /game/{id}/board", game.Dump)
	a.router.HandleFunc("POST /game/{id}/reveal", game.Reveal())
	a.router.HandleFunc("POST /game/{id}/mark", game.Mark())
	a.router.HandleFunc("POST /game/{id}/unmark", game.Unmark())
	a.router.HandleFunc("POST /game/{id}/forfeit", game.Forfeit)
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)
}
