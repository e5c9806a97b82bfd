package cartactivity

import (
	"context"
	"fmt"

	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/myhttp"
	"github.com/scottygfc67/pearlperfect-website/lib/mylog"
	"github.com/scottygfc67/pearlperfect-website/lib/mypubsub"
	"github.com/scottygfc67/pearlperfect-website/lib/mystore"
	"github.com/scottygfc67/pearlperfect-website/lib/mytime"
	"github.com/scottygfc67/pearlperfect-website/services/cartevents"
)

type service struct {
	activityStore mystore.Store[CartActivity]
	subscriber    mypubsub.PubSub
	nower         mytime.Nower
	logger        mylog.Logger
}

func newService(activityStore mystore.Store[CartActivity], subscriber mypubsub.PubSub, nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		activityStore: activityStore,
		subscriber:    subscriber,
		nower:         nower,
		logger:        logger,
	}
}

func (s *service) Subscribe(c context.Context) error {
	err := s.subscriber.Subscribe(c, cartevents.TopicName, myhttp.GuessHostnameWithScheme()+"/api/cart/event")
	if err != nil {
		return fmt.Errorf("error subscribing to topic %s: %s", cartevents.TopicName, err)
	}

	return nil
}

func (s *service) OnCartCreated(c context.Context, topic string, event cartevents.CartCreated) error {
	s.logger.Log(c, event.CartID, mylog.SeverityInfo, "Webhook: cart %s created", event.CartID)
	return s.record(c, event.CartID, event.TotalQuantity)
}

func (s *service) OnCartLinesAdded(c context.Context, topic string, event cartevents.CartLinesAdded) error {
	return s.record(c, event.CartID, event.TotalQuantity)
}

func (s *service) OnCartLinesUpdated(c context.Context, topic string, event cartevents.CartLinesUpdated) error {
	return s.record(c, event.CartID, event.TotalQuantity)
}

func (s *service) OnCartLinesRemoved(c context.Context, topic string, event cartevents.CartLinesRemoved) error {
	return s.record(c, event.CartID, event.TotalQuantity)
}

func (s *service) getActivity(c context.Context, cartID string) (CartActivity, bool, error) {
	return s.activityStore.Get(c, cartID)
}

func (s *service) record(c context.Context, cartID string, totalQuantity int) error {
	now := s.nower.Now()

	return s.activityStore.RunInTransaction(c, func(c context.Context) error {
		activity, found, err := s.activityStore.Get(c, cartID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			activity = CartActivity{
				CartID:    cartID,
				CreatedAt: now,
			}
		}

		activity.TotalQuantity = totalQuantity
		activity.Mutations++
		activity.LastModified = now

		err = s.activityStore.Put(c, cartID, activity)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
}
