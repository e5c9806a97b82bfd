package cartactivity

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scottygfc67/pearlperfect-website/lib/mycontext"
	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/myhttp"
	"github.com/scottygfc67/pearlperfect-website/lib/mylog"
	"github.com/scottygfc67/pearlperfect-website/lib/mypubsub"
	"github.com/scottygfc67/pearlperfect-website/lib/mystore"
	"github.com/scottygfc67/pearlperfect-website/lib/mytime"
	"github.com/scottygfc67/pearlperfect-website/services/cartevents"
)

type ActivityResponse struct {
	Success  bool         `json:"success"`
	Activity CartActivity `json:"activity"`
}

type webService struct {
	logger  mylog.Logger
	service *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(activityStore mystore.Store[CartActivity], subscriber mypubsub.PubSub, nower mytime.Nower) *webService {
	logger := mylog.New("cartactivity")

	return &webService{
		logger:  logger,
		service: newService(activityStore, subscriber, nower, logger),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/cart/event", s.eventHandler()).Methods("POST")
	router.HandleFunc("/api/cart/activity/{id}", s.getActivityPage()).Methods("GET")

	return s.service.Subscribe(c)
}

// eventHandler receives pubsub push deliveries of cart events.
func (s *webService) eventHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		err := cartevents.DispatchEvent(c, r.Body, s.service)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		respWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Success: true,
			Message: "Successfully processed event",
		})
	}
}

func (s *webService) getActivityPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		cartID := mux.Vars(r)["id"]

		activity, found, err := s.service.getActivity(c, cartID)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}
		if !found {
			respWriter.WriteError(c, w, myerrors.NewNotFoundError(fmt.Errorf("no activity for cart %s", cartID)))
			return
		}

		respWriter.Write(c, w, http.StatusOK, ActivityResponse{
			Success:  true,
			Activity: activity,
		})
	}
}
