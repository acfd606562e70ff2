package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/beesweeper-server/internal/auth"
	"github.com/vancomm/beesweeper-server/internal/beesweeper"
	"github.com/vancomm/beesweeper-server/internal/config"
	"github.com/vancomm/beesweeper-server/internal/field"
	"github.com/vancomm/beesweeper-server/internal/middleware"
	"github.com/vancomm/beesweeper-server/internal/session"
)

var (
	ErrFieldTooLarge = errors.New("field exceeds the server limits")
	ErrNoToken       = errors.New("game token required")
	ErrForeignToken  = errors.New("token does not grant access to this game")
)

type GameHandler struct {
	log      *logrus.Logger
	store    *session.Store
	issuer   *auth.Issuer
	limits   config.Game
	upgrader websocket.Upgrader
	dec      *schema.Decoder
}

func NewGameHandler(
	log *logrus.Logger,
	store *session.Store,
	issuer *auth.Issuer,
	limits config.Game,
) *GameHandler {
	return &GameHandler{
		log:      log,
		store:    store,
		issuer:   issuer,
		limits:   limits,
		upgrader: config.NewUpgrader(),
		dec:      newDecoder(),
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	var params NewGameParams
	if err := g.dec.Decode(&params, r.URL.Query()); err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	if params.Columns > g.limits.MaxColumns || params.Rows > g.limits.MaxRows {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, fmt.Errorf(
			"%w: %dx%d > %dx%d", ErrFieldTooLarge,
			params.Columns, params.Rows, g.limits.MaxColumns, g.limits.MaxRows,
		))
		return
	}

	game, err := beesweeper.NewRectangularGame(
		params.Columns, params.Rows, params.Bees, params.options()...,
	)
	if errors.Is(err, field.ErrInvalidArgument) {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to create a new game")
		return
	}

	s := g.store.Create(game)
	token, err := g.issuer.Sign(s.ID)
	if err != nil {
		g.store.Delete(s.ID)
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to sign game token")
		return
	}

	var dto *GameDTO
	s.Do(func(game *beesweeper.Game) { dto = NewGameDTO(s.ID, game) })

	sendStatusJSONOrLog(w, g.log, http.StatusCreated, &CreatedDTO{Token: token, Game: dto})
}

func (g GameHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, err := g.store.Get(r.PathValue("id"))
	if errors.Is(err, session.ErrNotFound) {
		sendErrorOrLog(w, g.log, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch session")
		return nil, false
	}
	return s, true
}

// owned resolves the session and checks the caller's game token.
func (g GameHandler) owned(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	claims, ok := middleware.GameClaims(r.Context())
	if !ok {
		err := ErrNoToken
		if tokenErr := middleware.TokenError(r.Context()); tokenErr != nil {
			err = tokenErr
		}
		sendErrorOrLog(w, g.log, http.StatusUnauthorized, err)
		return nil, false
	}
	s, ok := g.session(w, r)
	if !ok {
		return nil, false
	}
	if claims.GameID != s.ID {
		sendErrorOrLog(w, g.log, http.StatusForbidden, ErrForeignToken)
		return nil, false
	}
	return s, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}
	var dto *GameDTO
	s.Do(func(game *beesweeper.Game) { dto = NewGameDTO(s.ID, game) })
	sendJSONOrLog(w, g.log, dto)
}

type operation func(*beesweeper.Game, field.Coordinate) beesweeper.OperationStatus

func (g GameHandler) move(name string, op operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pos PosParams
		if err := g.dec.Decode(&pos, r.URL.Query()); err != nil {
			sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
			return
		}
		s, ok := g.owned(w, r)
		if !ok {
			return
		}

		var dto MoveDTO
		s.Do(func(game *beesweeper.Game) {
			dto.Result = op(game, pos.Coordinate())
			dto.Game = NewGameDTO(s.ID, game)
		})

		g.log.WithFields(logrus.Fields{
			"game_id": s.ID,
			"move":    name,
			"pos":     pos.Coordinate().String(),
			"result":  dto.Result.String(),
			"status":  dto.Game.Status.String(),
		}).Debug("move")

		sendJSONOrLog(w, g.log, &dto)
	}
}

func (g GameHandler) Reveal() http.HandlerFunc { return g.move("reveal", (*beesweeper.Game).Reveal) }
func (g GameHandler) Mark() http.HandlerFunc   { return g.move("mark", (*beesweeper.Game).Mark) }
func (g GameHandler) Unmark() http.HandlerFunc { return g.move("unmark", (*beesweeper.Game).Unmark) }

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	s, ok := g.owned(w, r)
	if !ok {
		return
	}
	var dto MoveDTO
	s.Do(func(game *beesweeper.Game) {
		dto.Result = game.Forfeit()
		dto.Game = NewGameDTO(s.ID, game)
	})
	sendJSONOrLog(w, g.log, &dto)
}

func (g GameHandler) Dump(w http.ResponseWriter, r *http.Request) {
	s, ok := g.session(w, r)
	if !ok {
		return
	}
	var board string
	s.Do(func(game *beesweeper.Game) { board = game.Dump() })
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(board)); err != nil {
		g.log.WithError(err).Error("unable to send board")
	}
}
