package cartactivity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/scottygfc67/pearlperfect-website/lib/myevents"
	"github.com/scottygfc67/pearlperfect-website/lib/mypubsub"
	"github.com/scottygfc67/pearlperfect-website/lib/mystore"
	"github.com/scottygfc67/pearlperfect-website/lib/mytime"
	"github.com/scottygfc67/pearlperfect-website/services/cartevents"
)

func TestCartActivity(t *testing.T) {
	t.Run("Cart events build up an activity record", func(t *testing.T) {
		ctrl, router, nower := setup(t)
		defer ctrl.Finish()

		// given
		nower.EXPECT().Now().Return(mytime.ExampleTime).Times(2)

		// when: a create followed by an add arrives on the push endpoint
		response := pushEvent(t, router, cartevents.CartCreated{
			CartID:        "cart-abc123",
			TotalQuantity: 2,
		})
		assert.Equal(t, 200, response.Code)

		response = pushEvent(t, router, cartevents.CartLinesAdded{
			CartID:        "cart-abc123",
			TotalQuantity: 5,
		})
		assert.Equal(t, 200, response.Code)

		// then
		request := httptest.NewRequest(http.MethodGet, "/api/cart/activity/cart-abc123", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, 200, recorder.Code)
		got := ActivityResponse{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
		assert.True(t, got.Success)
		assert.Equal(t, 5, got.Activity.TotalQuantity)
		assert.Equal(t, 2, got.Activity.Mutations)
		assert.Equal(t, mytime.ExampleTime, got.Activity.CreatedAt)
	})

	t.Run("Unknown event type is not implemented", func(t *testing.T) {
		ctrl, router, _ := setup(t)
		defer ctrl.Finish()

		// when
		envelope := myevents.EventEnvelope{
			Topic:         cartevents.TopicName,
			EventTypeName: "cart.somethingElse",
			EventPayload:  "{}",
		}
		response := pushEnvelope(t, router, envelope)

		// then
		assert.Equal(t, 501, response.Code)
	})

	t.Run("Malformed push request is a bad request", func(t *testing.T) {
		ctrl, router, _ := setup(t)
		defer ctrl.Finish()

		// when
		request := httptest.NewRequest(http.MethodPost, "/api/cart/event", strings.NewReader(`{not json`))
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("No activity is not found", func(t *testing.T) {
		ctrl, router, _ := setup(t)
		defer ctrl.Finish()

		// when
		request := httptest.NewRequest(http.MethodGet, "/api/cart/activity/cart-unknown", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})
}

func setup(t *testing.T) (*gomock.Controller, *mux.Router, *mytime.MockNower) {
	c := context.TODO()
	ctrl := gomock.NewController(t)
	nower := mytime.NewMockNower(ctrl)
	subscriber := mypubsub.NewMockPubSub(ctrl)
	subscriber.EXPECT().Subscribe(c, cartevents.TopicName, "http://localhost:8080/api/cart/event").Return(nil)

	activityStore, cleanup, err := mystore.NewInMemoryStore[CartActivity](c)
	assert.NoError(t, err)
	t.Cleanup(cleanup)

	router := mux.NewRouter()
	sut := NewWebService(activityStore, subscriber, nower)
	err = sut.RegisterEndpoints(c, router)
	assert.NoError(t, err)

	return ctrl, router, nower
}

func pushEvent(t *testing.T, router *mux.Router, event myevents.Event) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	return pushEnvelope(t, router, myevents.EventEnvelope{
		Topic:         cartevents.TopicName,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(payload),
	})
}

func pushEnvelope(t *testing.T, router *mux.Router, envelope myevents.EventEnvelope) *httptest.ResponseRecorder {
	t.Helper()

	envelopeJSON, err := json.Marshal(envelope)
	assert.NoError(t, err)
	body, err := json.Marshal(myevents.PushRequest{
		Message: myevents.PushMessage{Data: envelopeJSON},
	})
	assert.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/api/cart/event", strings.NewReader(string(body)))
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
