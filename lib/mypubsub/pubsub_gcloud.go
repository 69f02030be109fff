package mypubsub

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/pubsub"
	grpcCodes "google.golang.org/grpc/codes"
	grpcStatus "google.golang.org/grpc/status"
)

type gcloudPubSub struct {
	client *pubsub.Client
}

func newGcloudPubSub(c context.Context) (PubSub, func(), error) {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	client, err := pubsub.NewClient(c, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating pubsub-client: %s", err)
	}

	return &gcloudPubSub{
			client: client,
		}, func() {
			client.Close()
		}, nil
}

func (p *gcloudPubSub) CreateTopic(c context.Context, topic string) error {
	_, err := p.client.CreateTopic(c, topic)
	if err != nil {
		rsp, ok := grpcStatus.FromError(err)
		if ok && rsp.Code() == grpcCodes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("error creating topic %s: %s", topic, err)
	}

	log.Printf("Created topic %s", topic)

	return nil
}

func (p *gcloudPubSub) Subscribe(c context.Context, topic string, webhookURL string) error {
	subscriptionID := topic + "-push"
	_, err := p.client.CreateSubscription(c, subscriptionID, pubsub.SubscriptionConfig{
		Topic: p.client.Topic(topic),
		PushConfig: pubsub.PushConfig{
			Endpoint: webhookURL,
		},
	})
	if err != nil {
		rsp, ok := grpcStatus.FromError(err)
		if ok && rsp.Code() == grpcCodes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("error subscribing to topic %s: %s", topic, err)
	}

	log.Printf("Subscribed %s to topic %s", webhookURL, topic)

	return nil
}

func (p *gcloudPubSub) Publish(c context.Context, topic string, msg string) error {
	_, err := p.client.Topic(topic).Publish(c, &pubsub.Message{
		Data: []byte(msg),
	}).Get(c)
	if err != nil {
		return fmt.Errorf("error publishing on topic %s: %s", topic, err)
	}

	return nil
}
