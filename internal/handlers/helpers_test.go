package handlers

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/beesweeper-server/internal/auth"
	"github.com/vancomm/beesweeper-server/internal/beesweeper"
	"github.com/vancomm/beesweeper-server/internal/config"
	"github.com/vancomm/beesweeper-server/internal/field"
	"github.com/vancomm/beesweeper-server/internal/middleware"
	"github.com/vancomm/beesweeper-server/internal/session"
)

type beesAt []field.Coordinate

func (b beesAt) Select(n int, _ field.Shape) ([]field.Coordinate, error) {
	if n != len(b) {
		return nil, fmt.Errorf("%w: fixture has %d bees", field.ErrInvalidArgument, len(b))
	}
	return b, nil
}

func fixtureGame(t *testing.T, columns, rows int, bees ...field.Coordinate) *beesweeper.Game {
	t.Helper()
	g, err := beesweeper.NewRectangularGame(
		columns, rows, len(bees), beesweeper.WithGenerator(beesAt(bees)),
	)
	require.NoError(t, err)
	return g
}

var (
	keyOnce sync.Once
	key     *rsa.PrivateKey
)

func testIssuer(t *testing.T) *auth.Issuer {
	t.Helper()
	keyOnce.Do(func() {
		var err error
		key, err = rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
	})
	return auth.NewIssuer(key, &key.PublicKey, time.Hour)
}

type testServer struct {
	store   *session.Store
	issuer  *auth.Issuer
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := session.NewStore(log)
	issuer := testIssuer(t)
	game := NewGameHandler(log, store, issuer, config.Game{MaxColumns: 30, MaxRows: 16})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /game", game.NewGame)
	mux.HandleFunc("GET /game/{id}", game.Fetch)
	mux.HandleFunc("GET /game/{id}/board", game.Dump)
	mux.HandleFunc("POST /game/{id}/reveal", game.Reveal())
	mux.HandleFunc("POST /game/{id}/mark", game.Mark())
	mux.HandleFunc("POST /game/{id}/unmark", game.Unmark())
	mux.HandleFunc("POST /game/{id}/forfeit", game.Forfeit)
	mux.HandleFunc("GET /game/{id}/connect", game.ConnectWS)

	return &testServer{
		store:   store,
		issuer:  issuer,
		handler: middleware.Auth(log, issuer)(mux),
	}
}

// add registers a fixture game and returns its id and token.
func (s *testServer) add(t *testing.T, g *beesweeper.Game) (string, string) {
	t.Helper()
	sess := s.store.Create(g)
	token, err := s.issuer.Sign(sess.ID)
	require.NoError(t, err)
	return sess.ID, token
}
