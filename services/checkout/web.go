package checkout

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/scottygfc67/pearlperfect-website/lib/mycontext"
	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/myhttp"
	"github.com/scottygfc67/pearlperfect-website/lib/mylog"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
	"github.com/scottygfc67/pearlperfect-website/services/cartid"
	"github.com/scottygfc67/pearlperfect-website/services/shopify"
)

type buyNowForm struct {
	VariantID     string `form:"variantId"`
	Quantity      int    `form:"quantity"`
	SellingPlanID string `form:"sellingPlanId"`
}

type webService struct {
	logger  mylog.Logger
	service *service
	cartIDs cartid.Store
	decoder *form.Decoder
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(client shopify.Client, cartIDs cartid.Store, permalinks PermalinkBuilder) *webService {
	logger := mylog.New("checkout")

	return &webService{
		logger:  logger,
		service: newService(client, permalinks, logger),
		cartIDs: cartIDs,
		decoder: form.NewDecoder(),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/buynow", s.buyNowPage()).Methods("POST")

	return nil
}

// buyNowPage takes a plain html form post and redirects straight into
// checkout, skipping the cart page entirely.
func (s *webService) buyNowPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		line, err := s.parseForm(r)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		c = shopify.WithBuyerIP(c, myhttp.BuyerIP(r))
		redirectURL, cartID, err := s.service.buyNow(c, line)
		if err != nil {
			respWriter.WriteError(c, w, err)
			return
		}

		if cartID != "" {
			s.cartIDs.Set(w, cartID)
		}
		http.Redirect(w, r, redirectURL, http.StatusSeeOther)
	}
}

func (s *webService) parseForm(r *http.Request) (cartapi.LineItem, error) {
	err := r.ParseForm()
	if err != nil {
		return cartapi.LineItem{}, myerrors.NewInvalidInputError(fmt.Errorf("error parsing form: %s", err))
	}

	input := buyNowForm{}
	err = s.decoder.Decode(&input, r.PostForm)
	if err != nil {
		return cartapi.LineItem{}, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	if input.VariantID == "" {
		return cartapi.LineItem{}, myerrors.NewInvalidInputErrorf("variantId is required")
	}
	if input.Quantity < 0 {
		return cartapi.LineItem{}, myerrors.NewInvalidInputErrorf("quantity must not be negative")
	}
	// An omitted quantity means a single item
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	return cartapi.LineItem{
		MerchandiseID: input.VariantID,
		Quantity:      input.Quantity,
		SellingPlanID: input.SellingPlanID,
	}, nil
}
