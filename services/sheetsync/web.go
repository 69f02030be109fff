package sheetsync

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aoigroupbuy/storefront/lib/mycontext"
	"github.com/aoigroupbuy/storefront/lib/myhttp"
	"github.com/aoigroupbuy/storefront/lib/mylog"
	"github.com/aoigroupbuy/storefront/lib/mypubsub"
	"github.com/aoigroupbuy/storefront/services/checkout/checkoutevents"
)

// webService forwards submitted orders to the spreadsheet's sales tally.
// It sits behind the checkout topic so the visitor never waits on it.
type webService struct {
	client     *Client
	subscriber mypubsub.PubSub
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(client *Client, subscriber mypubsub.PubSub) *webService {
	return &webService{
		client:     client,
		subscriber: subscriber,
		logger:     mylog.New("sheetsync"),
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/sheetsync/event", s.eventPage()).Methods("POST")

	err := s.subscriber.Subscribe(c, checkoutevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/sheetsync/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", checkoutevents.TopicName, err)
	}

	return nil
}

func (s webService) eventPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := checkoutevents.DispatchEvent(c, r.Body, s)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}

// OnOrderSubmitted posts one buy action per ordered line. A failed post is
// logged and skipped, the tally is best effort.
func (s webService) OnOrderSubmitted(c context.Context, topic string, event checkoutevents.OrderSubmitted) error {
	s.logger.Log(c, event.OrderUID, mylog.SeverityInfo, "Webhook: order %s with %d lines", event.OrderUID, len(event.Items))

	for _, item := range event.Items {
		err := s.client.RecordPurchase(c, item.ProductUID, item.Quantity)
		if err != nil {
			s.logger.Log(c, event.OrderUID, mylog.SeverityWarn, "Error recording purchase of %s: %s", item.ProductUID, err)
		}
	}

	return nil
}
