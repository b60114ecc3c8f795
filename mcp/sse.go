package mcp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/foomo/notion-jarkup/service"
	"github.com/foomo/notion-jarkup/service/vo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event names written to SSE streams.
const (
	EventConnected      = "connected"
	EventKeepalive      = "keepalive"
	EventConvertStart   = "convert_start"
	EventConvertResult  = "convert_result"
	EventConvertError   = "convert_error"
	EventConvertDone    = "convert_complete"
	EventBlockConverted = "block_converted"
)

// SSEEvent represents an SSE event structure
type SSEEvent struct {
	ID        string    `json:"id"`
	Event     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func newEvent(name string, data any) SSEEvent {
	return SSEEvent{
		ID:        uuid.NewString(),
		Event:     name,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SSEClient is a subscriber on the /sse stream. Events are queued on events
// and written by the handler goroutine that owns the connection.
type SSEClient struct {
	ID          string
	ConnectedAt time.Time
	events      chan SSEEvent
	done        chan struct{}
}

type ClientInfo struct {
	ID          string    `json:"id"`
	ConnectedAt time.Time `json:"connectedAt"`
}

type Stats struct {
	ConnectedClients  int    `json:"connectedClients"`
	PendingBroadcasts int    `json:"pendingBroadcasts"`
	ServerVersion     string `json:"serverVersion"`
}

// SSEServerConfig holds configuration for the SSE server
type SSEServerConfig struct {
	KeepaliveInterval time.Duration
	BufferSize        int
}

func DefaultSSEServerConfig() *SSEServerConfig {
	return &SSEServerConfig{
		KeepaliveInterval: 30 * time.Second,
		BufferSize:        100,
	}
}

// MCPSSEServer streams conversions over SSE and tells subscribers about them.
type MCPSSEServer struct {
	logger       *zap.Logger
	service      service.Service
	config       *SSEServerConfig
	clients      map[string]*SSEClient
	clientsMutex sync.RWMutex
	broadcast    chan SSEEvent
	quit         chan struct{}
	closeOnce    sync.Once
}

func NewMCPSSEServer(logger *zap.Logger, serviceInstance service.Service, config *SSEServerConfig) *MCPSSEServer {
	if config == nil {
		config = DefaultSSEServerConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sseServer := &MCPSSEServer{
		logger:    logger,
		service:   serviceInstance,
		config:    config,
		clients:   make(map[string]*SSEClient),
		broadcast: make(chan SSEEvent, config.BufferSize),
		quit:      make(chan struct{}),
	}

	go sseServer.broadcastLoop()

	return sseServer
}

// Close stops the broadcast loop and disconnects all clients.
func (s *MCPSSEServer) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.clientsMutex.Lock()
		defer s.clientsMutex.Unlock()
		for id, client := range s.clients {
			close(client.done)
			delete(s.clients, id)
		}
	})
}

func (s *MCPSSEServer) broadcastLoop() {
	for {
		var event SSEEvent
		select {
		case <-s.quit:
			return
		case event = <-s.broadcast:
		}
		s.clientsMutex.RLock()
		for clientID, client := range s.clients {
			select {
			case client.events <- event:
			default:
				s.logger.Warn("client queue full, dropping event", zap.String("clientID", clientID), zap.String("eventID", event.ID))
			}
		}
		s.clientsMutex.RUnlock()
	}
}

// broadcastEvent sends an event to all connected clients
func (s *MCPSSEServer) broadcastEvent(event SSEEvent) {
	select {
	case s.broadcast <- event:
	default:
		s.logger.Warn("broadcast channel full, dropping event", zap.String("eventID", event.ID))
	}
}

func (s *MCPSSEServer) addClient() *SSEClient {
	client := &SSEClient{
		ID:          uuid.NewString(),
		ConnectedAt: time.Now(),
		events:      make(chan SSEEvent, s.config.BufferSize),
		done:        make(chan struct{}),
	}

	s.clientsMutex.Lock()
	s.clients[client.ID] = client
	s.clientsMutex.Unlock()

	s.logger.Info("SSE client connected", zap.String("clientID", client.ID))
	return client
}

func (s *MCPSSEServer) removeClient(clientID string) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	if client, exists := s.clients[clientID]; exists {
		close(client.done)
		delete(s.clients, clientID)
		s.logger.Info("SSE client disconnected", zap.String("clientID", clientID))
	}
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event SSEEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Event, eventJSON); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

func setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// HandleSSE subscribes the caller to conversion notifications until it
// disconnects.
func (s *MCPSSEServer) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	setSSEHeaders(w)

	client := s.addClient()
	defer s.removeClient(client.ID)

	connectEvent := newEvent(EventConnected, map[string]string{"clientID": client.ID, "message": "Connected to notion-jarkup SSE server"})
	if err := writeEvent(w, flusher, connectEvent); err != nil {
		s.logger.Error("failed to send connection event", zap.String("clientID", client.ID), zap.Error(err))
		return
	}

	ticker := time.NewTicker(s.config.KeepaliveInterval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		var event SSEEvent
		select {
		case <-ctx.Done():
			return
		case <-client.done:
			return
		case event = <-client.events:
		case <-ticker.C:
			event = newEvent(EventKeepalive, map[string]any{"timestamp": time.Now()})
		}
		if err := writeEvent(w, flusher, event); err != nil {
			s.logger.Debug("failed to send event", zap.String("clientID", client.ID), zap.Error(err))
			return
		}
	}
}

// HandleConvertSSE converts a block and streams the progress to the caller.
// Successful conversions are announced to all subscribers.
func (s *MCPSSEServer) HandleConvertSSE(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request ConvertBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if request.BlockID == "" {
		http.Error(w, "blockId is required", http.StatusBadRequest)
		return
	}
	format, err := vo.ParseFormat(request.Format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	setSSEHeaders(w)

	l := s.logger.With(zap.String("blockId", request.BlockID), zap.String("format", string(format)))
	send := func(event SSEEvent) bool {
		if err := writeEvent(w, flusher, event); err != nil {
			l.Debug("failed to send event", zap.String("event", event.Event), zap.Error(err))
			return false
		}
		return true
	}

	if !send(newEvent(EventConvertStart, map[string]string{"blockId": request.BlockID, "format": string(format)})) {
		return
	}

	document, err := s.service.GetDocument(r.Context(), request.BlockID, format)
	if err != nil {
		send(newEvent(EventConvertError, map[string]string{"error": err.Error()}))
		return
	}

	if !send(newEvent(EventConvertResult, ConvertBlockResponse{Document: document})) {
		return
	}
	send(newEvent(EventConvertDone, map[string]string{"status": "completed"}))

	s.broadcastEvent(newEvent(EventBlockConverted, map[string]string{"blockId": request.BlockID, "format": string(format)}))
}

// GetConnectedClients returns information about connected clients
func (s *MCPSSEServer) GetConnectedClients() []ClientInfo {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	clients := make([]ClientInfo, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, ClientInfo{ID: client.ID, ConnectedAt: client.ConnectedAt})
	}
	return clients
}

func (s *MCPSSEServer) GetStats() Stats {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	return Stats{
		ConnectedClients:  len(s.clients),
		PendingBroadcasts: len(s.broadcast),
		ServerVersion:     Version,
	}
}
