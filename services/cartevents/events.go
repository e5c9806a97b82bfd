package cartevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/myevents"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

const (
	TopicName = "cart"

	cartCreatedName      = TopicName + ".created"
	cartLinesAddedName   = TopicName + ".linesAdded"
	cartLinesUpdatedName = TopicName + ".linesUpdated"
	cartLinesRemovedName = TopicName + ".linesRemoved"
)

// CartEventService is implemented by services that consume cart events
// delivered on a pubsub push subscription.
type CartEventService interface {
	Subscribe(c context.Context) error
	OnCartCreated(c context.Context, topic string, event CartCreated) error
	OnCartLinesAdded(c context.Context, topic string, event CartLinesAdded) error
	OnCartLinesUpdated(c context.Context, topic string, event CartLinesUpdated) error
	OnCartLinesRemoved(c context.Context, topic string, event CartLinesRemoved) error
}

func DispatchEvent(c context.Context, reader io.Reader, service CartEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case cartCreatedName:
		event := CartCreated{}
		err := json.Unmarshal([]byte(envelope.EventPayload), &event)
		if err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnCartCreated(c, envelope.Topic, event)
	case cartLinesAddedName:
		event := CartLinesAdded{}
		err := json.Unmarshal([]byte(envelope.EventPayload), &event)
		if err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnCartLinesAdded(c, envelope.Topic, event)
	case cartLinesUpdatedName:
		event := CartLinesUpdated{}
		err := json.Unmarshal([]byte(envelope.EventPayload), &event)
		if err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnCartLinesUpdated(c, envelope.Topic, event)
	case cartLinesRemovedName:
		event := CartLinesRemoved{}
		err := json.Unmarshal([]byte(envelope.EventPayload), &event)
		if err != nil {
			return myerrors.NewInvalidInputError(err)
		}
		return service.OnCartLinesRemoved(c, envelope.Topic, event)
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event type %s", envelope.EventTypeName))
	}
}

type CartCreated struct {
	CartID        string
	CheckoutURL   string
	TotalQuantity int
	Lines         []cartapi.LineItem
}

func (e CartCreated) GetEventTypeName() string {
	return cartCreatedName
}

func (e CartCreated) GetAggregateName() string {
	return e.CartID
}

func (e CartCreated) String() string {
	return fmt.Sprintf("cart %s created with %d items", e.CartID, e.TotalQuantity)
}

type CartLinesAdded struct {
	CartID        string
	TotalQuantity int
	Lines         []cartapi.LineItem
}

func (e CartLinesAdded) GetEventTypeName() string {
	return cartLinesAddedName
}

func (e CartLinesAdded) GetAggregateName() string {
	return e.CartID
}

type CartLinesUpdated struct {
	CartID        string
	TotalQuantity int
	Updates       []cartapi.LineUpdate
}

func (e CartLinesUpdated) GetEventTypeName() string {
	return cartLinesUpdatedName
}

func (e CartLinesUpdated) GetAggregateName() string {
	return e.CartID
}

type CartLinesRemoved struct {
	CartID        string
	TotalQuantity int
	LineIDs       []string
}

func (e CartLinesRemoved) GetEventTypeName() string {
	return cartLinesRemovedName
}

func (e CartLinesRemoved) GetAggregateName() string {
	return e.CartID
}
