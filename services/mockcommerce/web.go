package mockcommerce

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
	"github.com/scottygfc67/pearlperfect-website/lib/mystore"
	"github.com/scottygfc67/pearlperfect-website/lib/mytime"
	"github.com/scottygfc67/pearlperfect-website/lib/myuuid"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

// Local stand-in for the commerce backend so the rest of the stack can be
// exercised without a store domain or access tokens.

type mutateRequest struct {
	CartID string             `json:"cartId"`
	Lines  []cartapi.LineItem `json:"lines"`
}

type modificationResponse struct {
	Success       bool   `json:"success"`
	CartID        string `json:"cartId"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
}

type cartResponse struct {
	Success bool     `json:"success"`
	Cart    MockCart `json:"cart"`
}

type webService struct {
	logger  mylog.Logger
	service *service
}

func NewWebService(carts mystore.Store[MockCart], nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	return &webService{
		logger:  mylog.New("mockcommerce"),
		service: newService(carts, nower, uuider),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/mock/cart/create", s.createCart()).Methods("POST")
	router.HandleFunc("/mock/cart/add", s.addLines()).Methods("POST")
	router.HandleFunc("/mock/cart/get", s.getCart()).Methods("GET")

	return nil
}

func (s *webService) createCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		request := mutateRequest{}
		err := parseBody(r, &request)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		modification, err := s.service.createCart(c, myhttp.HostnameWithScheme(r), request.Lines)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		respWriter.Write(c, w, http.StatusOK, toResponse(modification))
	}
}

func (s *webService) addLines() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		request := mutateRequest{}
		err := parseBody(r, &request)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}
		if request.CartID == "" {
			respWriter.WriteError(c, w, myerrors.NewInvalidInputErrorf("cart id is required"))
			return
		}
		err = cartapi.ValidateLineItems(request.Lines)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		modification, err := s.service.addLines(c, myhttp.HostnameWithScheme(r), request.CartID, request.Lines)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		respWriter.Write(c, w, http.StatusOK, toResponse(modification))
	}
}

func (s *webService) getCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		cartID := r.URL.Query().Get("id")
		if cartID == "" {
			respWriter.WriteError(c, w, myerrors.NewInvalidInputErrorf("cart id is required"))
			return
		}

		cart, found, err := s.service.getCart(c, cartID)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}
		if !found {
			respWriter.WriteError(c, w, myerrors.NewNotFoundError(fmt.Errorf("cart %s not found", cartID)))
			return
		}

		respWriter.Write(c, w, http.StatusOK, cartResponse{
			Success: true,
			Cart:    cart,
		})
	}
}

func parseBody(r *http.Request, request any) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing request: %s", err))
	}
	return nil
}

func toResponse(modification cartapi.CartModification) modificationResponse {
	return modificationResponse{
		Success:       true,
		CartID:        modification.CartID,
		CheckoutURL:   modification.CheckoutURL,
		TotalQuantity: modification.TotalQuantity,
	}
}
