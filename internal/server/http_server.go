package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/relictools/relicrater/internal/capture"
	"github.com/relictools/relicrater/internal/event"
	"github.com/relictools/relicrater/internal/rating"
)

// HttpServer exposes the rating engine over a local JSON API and pushes
// template store snapshots to connected UI clients over a websocket.
type HttpServer struct {
	logger     *slog.Logger
	server     *http.Server
	store      *rating.Store
	engine     *rating.Engine
	wsServer   *WebSocketServer
	ratingAPI  *RatingAPI
	captureAPI *CaptureAPI
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn *websocket.Conn
	send chan []byte
}

type WebSocketServer struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

func NewWebSocketServer() *WebSocketServer {
	return &WebSocketServer{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (s *WebSocketServer) Run() {
	for {
		select {
		case client := <-s.register:
			s.clients[client] = true
		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}
		case message := <-s.broadcast:
			for client := range s.clients {
				select {
				case client.send <- message:
				default:
					delete(s.clients, client)
					close(client.send)
				}
			}
		}
	}
}

func (c *Client) writePump(ws *WebSocketServer) {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) readPump(ws *WebSocketServer) {
	defer func() {
		ws.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				return
			}
			return
		}
	}
}

func New(logger *slog.Logger, store *rating.Store, engine *rating.Engine, listener *event.Listener, capturer capture.Capturer, windowTitle string) *HttpServer {
	s := &HttpServer{
		logger:     logger,
		store:      store,
		engine:     engine,
		wsServer:   NewWebSocketServer(),
		ratingAPI:  NewRatingAPI(logger, store, engine, listener),
		captureAPI: NewCaptureAPI(logger, capturer, windowTitle),
	}
	return s
}

// HandleTemplatesUpdated pushes new store snapshots to websocket clients.
// Register it on the event listener.
func (s *HttpServer) HandleTemplatesUpdated(_ context.Context, e event.Event) error {
	if evt, ok := e.(event.TemplatesUpdatedEvent); ok {
		select {
		case s.wsServer.broadcast <- evt.Snapshot:
		default:
		}
	}
	return nil
}

func (s *HttpServer) Listen(port int) error {
	go s.wsServer.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	s.ratingAPI.RegisterRoutes(mux)
	s.captureAPI.RegisterRoutes(mux)

	s.server = &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", port),
		Handler: mux,
	}

	s.logger.Info("rating server listening", slog.Int("port", port))
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *HttpServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func (s *HttpServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", slog.Any("error", err))
		return
	}

	client := &Client{conn: conn, send: make(chan []byte, 8)}
	s.wsServer.register <- client

	go client.writePump(s.wsServer)
	go client.readPump(s.wsServer)
}
