package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"club_ticketing/config"
	"club_ticketing/database"
	"club_ticketing/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	clients = make(map[uint]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		addr := config.Config("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		redisClient = redis.NewClient(&redis.Options{Addr: addr})
	})
	return redisClient
}

type feedMessage struct {
	Kind       string    `json:"kind"`
	TicketCode string    `json:"ticketCode,omitempty"`
	Zone       string    `json:"zone,omitempty"`
	Status     string    `json:"status,omitempty"`
	At         time.Time `json:"at"`
}

// PublishTicketEvent pushes an issuance or check-in notification onto the
// event's feed channel. Failures only get logged client-side; the feed is
// best effort and never blocks issuance.
func PublishTicketEvent(eventId uint, kind string, ticket model.IssuedTicket) {
	payload, err := json.Marshal(feedMessage{
		Kind:       kind,
		TicketCode: ticket.TicketCode,
		Zone:       ticket.EffectiveZone,
		Status:     ticket.Status,
		At:         time.Now(),
	})
	if err != nil {
		return
	}
	getRedisClient().Publish(
		context.Background(),
		fmt.Sprintf("ticketing:event:%d", eventId),
		payload,
	)
}

// PublishEngineEvent announces a template or override change so operator
// dashboards can refresh their configuration views.
func PublishEngineEvent(kind string, publicCode string) {
	payload, err := json.Marshal(feedMessage{
		Kind:       kind,
		TicketCode: publicCode,
		At:         time.Now(),
	})
	if err != nil {
		return
	}
	getRedisClient().Publish(context.Background(), "ticketing:engine", payload)
}

// EventFeedConnection streams the live ticket feed for one event to an
// operator screen. Each event is a room; every redis message on the
// event's channel fans out to all connections in the room.
func EventFeedConnection(c *websocket.Conn) {
	eventIdStr := c.Params("eventId")
	id64, _ := strconv.ParseUint(eventIdStr, 10, 64)
	eventId := uint(id64)

	defer func() {
		mu.Lock()
		if clients[eventId] != nil {
			delete(clients[eventId], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[eventId] == nil {
		clients[eventId] = make(map[*websocket.Conn]bool)
	}
	clients[eventId][c] = true
	mu.Unlock()

	// Initial snapshot: the most recent tickets for the event.
	var tickets []model.IssuedTicket
	database.DB.
		Where("event_id = ? AND deleted_at IS NULL", eventId).
		Order("created_at desc").
		Limit(50).
		Find(&tickets)
	c.WriteJSON(tickets)

	pubsub := getRedisClient().Subscribe(
		context.Background(),
		fmt.Sprintf("ticketing:event:%d", eventId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		mu.Lock()
		for conn := range clients[eventId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(clients[eventId], conn)
			}
		}
		mu.Unlock()
	}
}
