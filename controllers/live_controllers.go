package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/neo-dine/live"
	"github.com/yeremiapane/neo-dine/services"
	"github.com/yeremiapane/neo-dine/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin sudah dibatasi CORS + cookie session
	},
}

type LiveController struct {
	Hub  *live.Hub
	Cart *services.CartService
}

func NewLiveController(hub *live.Hub, cart *services.CartService) *LiveController {
	return &LiveController{Hub: hub, Cart: cart}
}

// LiveHandler -> endpoint WebSocket, satu visitor bisa punya beberapa tab
func (lc *LiveController) LiveHandler(c *gin.Context) {
	visitorID := utils.VisitorID(c)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade: %v", err)
		return
	}

	lc.Hub.Register(visitorID, ws)
	utils.VisitorLog(visitorID).Infof("live channel connected (%d open)", lc.Hub.Connections(visitorID))

	// state awal supaya badge cart langsung benar
	lc.Hub.Send(visitorID, live.Message{Event: live.EventCartUpdate, Data: lc.Cart.Get(visitorID)})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	lc.Hub.Unregister(visitorID, ws)
}
