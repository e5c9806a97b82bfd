package products

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scottygfc67/pearlperfect-website/lib/mycontext"
	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/myhttp"
	"github.com/scottygfc67/pearlperfect-website/lib/mylog"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
	"github.com/scottygfc67/pearlperfect-website/services/shopify"
)

type ProductResponse struct {
	Success bool            `json:"success"`
	Product cartapi.Product `json:"product"`
}

type webService struct {
	logger mylog.Logger
	client shopify.Client
}

func NewWebService(client shopify.Client) *webService {
	return &webService{
		logger: mylog.New("products"),
		client: client,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/products/{handle}", s.getProduct()).Methods("GET")

	return nil
}

func (s *webService) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		respWriter := myhttp.NewWriter(s.logger)

		handle := mux.Vars(r)["handle"]

		product, found, err := s.client.GetProductByHandle(c, handle)
		if err != nil {
			s.logger.Log(c, handle, mylog.SeverityError, "Error fetching product: %s", err)
			respWriter.WriteError(c, w, myerrors.NewUnavailableError(fmt.Errorf("could not complete request")))
			return
		}
		if !found {
			respWriter.WriteError(c, w, myerrors.NewNotFoundError(fmt.Errorf("product %s not found", handle)))
			return
		}

		respWriter.Write(c, w, http.StatusOK, ProductResponse{
			Success: true,
			Product: product,
		})
	}
}
