package mypubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/aoigroupbuy/storefront/lib/myevents"
)

// localPubSub keeps subscriptions in memory and delivers by POSTing the
// pubsub push envelope to each subscriber. Delivery runs detached from the
// publishing request: errors are logged, never propagated.
type localPubSub struct {
	sync.Mutex
	subscriptions map[string][]string
}

func newLocalPubSub(c context.Context) (PubSub, func(), error) {
	return &localPubSub{
		subscriptions: map[string][]string{},
	}, func() {}, nil
}

func (p *localPubSub) CreateTopic(c context.Context, topic string) error {
	p.Lock()
	defer p.Unlock()

	if _, exists := p.subscriptions[topic]; !exists {
		p.subscriptions[topic] = []string{}
	}

	return nil
}

func (p *localPubSub) Subscribe(c context.Context, topic string, webhookURL string) error {
	p.Lock()
	defer p.Unlock()

	for _, url := range p.subscriptions[topic] {
		if url == webhookURL {
			return nil
		}
	}
	p.subscriptions[topic] = append(p.subscriptions[topic], webhookURL)

	return nil
}

func (p *localPubSub) Publish(c context.Context, topic string, msg string) error {
	p.Lock()
	subscribers := make([]string, len(p.subscriptions[topic]))
	copy(subscribers, p.subscriptions[topic])
	p.Unlock()

	payload, err := json.Marshal(myevents.PushRequest{
		Message: myevents.PushMessage{
			Data: []byte(msg),
		},
		Subscription: topic,
	})
	if err != nil {
		return fmt.Errorf("error marshalling push-request for topic %s: %s", topic, err)
	}

	for _, url := range subscribers {
		go func(url string) {
			resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
			if err != nil {
				log.Printf("error pushing event on topic %s to %s: %s", topic, url, err)
				return
			}
			resp.Body.Close()
		}(url)
	}

	return nil
}
