package checkoutevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aoigroupbuy/storefront/lib/myerrors"
	"github.com/aoigroupbuy/storefront/lib/myevents"
)

const (
	TopicName          = "checkout"
	orderSubmittedName = TopicName + ".orderSubmitted"
)

type OrderEventService interface {
	OnOrderSubmitted(c context.Context, topic string, event OrderSubmitted) error
}

func DispatchEvent(c context.Context, reader io.Reader, service OrderEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case orderSubmittedName:
		{
			event := OrderSubmitted{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnOrderSubmitted(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event type %s", envelope.EventTypeName))
	}
}

type OrderedItem struct {
	ProductUID string
	Quantity   int
}

// OrderSubmitted is published when a visitor hands off an order or an
// inquiry. Carries only what the sales counter needs.
type OrderSubmitted struct {
	OrderUID string
	Items    []OrderedItem
}

func (e OrderSubmitted) GetEventTypeName() string {
	return orderSubmittedName
}

func (e OrderSubmitted) GetAggregateName() string {
	return e.OrderUID
}
