package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scottygfc67/pearlperfect-website/lib/mycontext"
	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/myhttp"
	"github.com/scottygfc67/pearlperfect-website/lib/mylog"
	"github.com/scottygfc67/pearlperfect-website/lib/mypublisher"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
	"github.com/scottygfc67/pearlperfect-website/services/cartevents"
	"github.com/scottygfc67/pearlperfect-website/services/cartid"
	"github.com/scottygfc67/pearlperfect-website/services/shopify"
)

type webService struct {
	logger  mylog.Logger
	service *service
	cartIDs cartid.Store
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(client shopify.Client, cartIDs cartid.Store, publisher mypublisher.Publisher) *webService {
	logger := mylog.New("cart")

	return &webService{
		logger:  logger,
		service: newService(client, publisher, logger),
		cartIDs: cartIDs,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.publisher.CreateTopic(c, cartevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", cartevents.TopicName, err)
	}

	router.HandleFunc("/api/cart/create", s.createCart()).Methods("POST")
	router.HandleFunc("/api/cart/add", s.addLines()).Methods("POST")
	router.HandleFunc("/api/cart/update", s.updateLines()).Methods("POST")
	router.HandleFunc("/api/cart/remove", s.removeLines()).Methods("POST")
	router.HandleFunc("/api/cart/get", s.getCart()).Methods("GET")

	return nil
}

func (s *webService) createCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		// An empty body still creates a valid empty cart
		request := createRequest{}
		err := parseBody(r, &request)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		modification, err := s.service.createCart(withBuyerIP(c, r), request.Lines)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		s.cartIDs.Set(w, modification.CartID)
		respWriter.Write(c, w, http.StatusOK, modificationResponse(modification))
	}
}

func (s *webService) addLines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		request := addRequest{}
		err := parseBody(r, &request)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		modification, err := s.service.addLines(withBuyerIP(c, r), s.resolveCartID(r, request.CartID), request.Lines)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		s.cartIDs.Set(w, modification.CartID)
		respWriter.Write(c, w, http.StatusOK, modificationResponse(modification))
	}
}

func (s *webService) updateLines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		request := updateRequest{}
		err := parseBody(r, &request)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		modification, err := s.service.updateLines(withBuyerIP(c, r), s.resolveCartID(r, request.CartID), request.Lines)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		s.cartIDs.Set(w, modification.CartID)
		respWriter.Write(c, w, http.StatusOK, modificationResponse(modification))
	}
}

func (s *webService) removeLines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		request := removeRequest{}
		err := parseBody(r, &request)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		modification, err := s.service.removeLines(withBuyerIP(c, r), s.resolveCartID(r, request.CartID), request.LineIDs)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		s.cartIDs.Set(w, modification.CartID)
		respWriter.Write(c, w, http.StatusOK, modificationResponse(modification))
	}
}

func (s *webService) getCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		// No identifier anywhere means there simply is no cart yet
		cartID := s.resolveCartID(r, r.URL.Query().Get("id"))
		if cartID == "" {
			respWriter.WriteError(c, w, myerrors.NewNotFoundError(fmt.Errorf("cart not found")))
			return
		}

		cart, err := s.service.getCart(withBuyerIP(c, r), cartID)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		respWriter.Write(c, w, http.StatusOK, CartResponse{
			Success: true,
			Cart:    cart,
		})
	}
}

// resolveCartID prefers an identifier supplied in the request itself over the
// cookie: the caller's explicit choice always wins.
func (s *webService) resolveCartID(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	id, _ := s.cartIDs.Get(r)
	return id
}

func parseBody(r *http.Request, request any) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		// An absent body is allowed; downstream validation decides
		if errors.Is(err, io.EOF) {
			return nil
		}
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err))
	}
	return nil
}

func withBuyerIP(c context.Context, r *http.Request) context.Context {
	return shopify.WithBuyerIP(c, myhttp.BuyerIP(r))
}

func modificationResponse(modification cartapi.CartModification) CartModificationResponse {
	return CartModificationResponse{
		Success:       true,
		CartID:        modification.CartID,
		CheckoutURL:   modification.CheckoutURL,
		TotalQuantity: modification.TotalQuantity,
	}
}
