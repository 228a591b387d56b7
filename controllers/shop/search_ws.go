package shopControllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/models"
	"github.com/shophub-io/storefront/search"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type searchInput struct {
	Query string `json:"query"`
}

type searchOutput struct {
	Suggestions []models.Product `json:"suggestions"`
}

// queueLatest enqueues without blocking. When the buffer is full it
// evicts the oldest queued list, so the last delivery written to the
// socket is always the newest one.
func queueLatest(results chan []models.Product, suggestions []models.Product) {
	for {
		select {
		case results <- suggestions:
			return
		default:
		}
		select {
		case <-results:
		default:
		}
	}
}

// GET /ws/search
// Live search: the client streams keystrokes, the suggester debounces
// them and pushes at most five suggestions per quiet period. Closing
// the socket cancels any pending fetch.
func LiveSearch(apic *api.Client, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		results := make(chan []models.Product, 8)
		suggester := search.NewSuggester(
			func(ctx context.Context, keyword string) ([]models.Product, error) {
				return apic.SearchSuggestions(ctx, keyword)
			},
			func(suggestions []models.Product) {
				queueLatest(results, suggestions)
			},
			log,
		)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for suggestions := range results {
				if suggestions == nil {
					suggestions = []models.Product{}
				}
				if err := conn.WriteJSON(searchOutput{Suggestions: suggestions}); err != nil {
					return
				}
			}
		}()

		for {
			var input searchInput
			if err := conn.ReadJSON(&input); err != nil {
				break
			}
			suggester.Input(input.Query)
		}

		// Close before the channel: once Close returns the suggester
		// cannot deliver again.
		suggester.Close()
		close(results)
		<-done
	}
}
