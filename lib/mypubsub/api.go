package mypubsub

import (
	"context"
	"os"
)

var New func(c context.Context) (PubSub, func(), error)

//go:generate mockgen -source=api.go -package mypubsub -destination pubsub_mock.go PubSub
type PubSub interface {
	CreateTopic(c context.Context, topic string) error
	Subscribe(c context.Context, topic string, webhookURL string) error
	Publish(c context.Context, topic string, msg string) error
}

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGcloudPubSub
	} else {
		New = newLocalPubSub
	}
}
