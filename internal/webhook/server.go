// Package webhook receives inbound WhatsApp messages from Twilio and
// answers with TwiML.
package webhook

import (
	"context"
	"encoding/xml"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"remindagent/internal/parser"
	"remindagent/internal/reminder"
)

const parseTimeout = 60 * time.Second

// Accepter runs the reminder acceptance flow and returns the reply text.
type Accepter interface {
	Accept(p reminder.Parsed, senderID string) string
}

// twiml is Twilio's expected reply envelope:
// <Response><Message>...</Message></Response>
type twiml struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// Server handles the inbound webhook.
type Server struct {
	engine  *gin.Engine
	parser  parser.Parser
	service Accepter
}

// NewServer wires the webhook routes.
func NewServer(p parser.Parser, service Accepter) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		engine:  gin.New(),
		parser:  p,
		service: service,
	}

	s.engine.Use(gin.Recovery())
	s.engine.POST("/whatsapp", s.handleInbound)

	return s
}

// Handler exposes the underlying handler for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleInbound(c *gin.Context) {
	body := c.PostForm("Body")
	from := c.PostForm("From")

	log.Printf("[webhook] 📥 Received message from %s: %s", from, body)

	ctx, cancel := context.WithTimeout(c.Request.Context(), parseTimeout)
	defer cancel()

	parsed, err := s.parser.Parse(ctx, body)
	if err != nil {
		log.Printf("[webhook] parse error: %v", err)
	}
	if parsed == nil {
		reply(c, "⚠️ Could not parse reminder. Please include a time/date.")
		return
	}

	reply(c, s.service.Accept(*parsed, from))
}

func reply(c *gin.Context, text string) {
	c.XML(http.StatusOK, twiml{Message: text})
}
