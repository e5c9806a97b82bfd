package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/scottygfc67/pearlperfect-website/config"
	"github.com/scottygfc67/pearlperfect-website/lib/myerrors"
	"github.com/scottygfc67/pearlperfect-website/lib/myhttpclient"
	"github.com/scottygfc67/pearlperfect-website/lib/mylog"
	"github.com/scottygfc67/pearlperfect-website/services/cartapi"
)

type client struct {
	storefrontToken string
	adminToken      string
	storefrontURL   string
	adminURL        string
	sender          myhttpclient.HTTPSender
	logger          mylog.Logger
}

// NewClient creates the commerce backend client. All configuration is taken
// from cfg once; nothing is read from the environment at call time.
func NewClient(cfg *config.Config, sender myhttpclient.HTTPSender) Client {
	return &client{
		storefrontToken: cfg.StorefrontAccessToken,
		adminToken:      cfg.AdminAccessToken,
		storefrontURL:   fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.StoreDomain, cfg.APIVersion),
		adminURL:        fmt.Sprintf("https://%s/admin/api/%s/graphql.json", cfg.StoreDomain, cfg.APIVersion),
		sender:          sender,
		logger:          mylog.New("shopify"),
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

type cartSummary struct {
	ID            string `json:"id"`
	CheckoutURL   string `json:"checkoutUrl"`
	TotalQuantity int    `json:"totalQuantity"`
}

type cartMutationPayload struct {
	Cart       *cartSummary `json:"cart"`
	UserErrors []userError  `json:"userErrors"`
}

type lineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
	SellingPlanID string `json:"sellingPlanId,omitempty"`
}

type lineUpdateInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func (cl *client) CreateCart(c context.Context, lines []cartapi.LineItem) (cartapi.CartModification, error) {
	// Creating an empty cart is valid; it still yields a usable checkout URL.
	data := struct {
		CartCreate cartMutationPayload `json:"cartCreate"`
	}{}
	err := cl.storefront(c, "cartCreate", cartCreateMutation, map[string]any{"lines": toLineInputs(lines)}, &data)
	if err != nil {
		return cartapi.CartModification{}, err
	}

	return normalizeMutation("cartCreate", "", data.CartCreate)
}

func (cl *client) AddLines(c context.Context, cartID string, lines []cartapi.LineItem) (cartapi.CartModification, error) {
	if cartID == "" {
		return cartapi.CartModification{}, myerrors.NewInvalidInputErrorf("cart id is required")
	}
	// Must be rejected before any network side effect
	err := cartapi.ValidateLineItems(lines)
	if err != nil {
		return cartapi.CartModification{}, err
	}

	data := struct {
		CartLinesAdd cartMutationPayload `json:"cartLinesAdd"`
	}{}
	err = cl.storefront(c, "cartLinesAdd", cartLinesAddMutation, map[string]any{
		"cartId": cartID,
		"lines":  toLineInputs(lines),
	}, &data)
	if err != nil {
		return cartapi.CartModification{}, err
	}

	return normalizeMutation("cartLinesAdd", cartID, data.CartLinesAdd)
}

func (cl *client) UpdateLines(c context.Context, cartID string, updates []cartapi.LineUpdate) (cartapi.CartModification, error) {
	if cartID == "" {
		return cartapi.CartModification{}, myerrors.NewInvalidInputErrorf("cart id is required")
	}
	err := cartapi.ValidateLineUpdates(updates)
	if err != nil {
		return cartapi.CartModification{}, err
	}

	lines := make([]lineUpdateInput, 0, len(updates))
	for _, update := range updates {
		lines = append(lines, lineUpdateInput{ID: update.ID, Quantity: update.Quantity})
	}

	data := struct {
		CartLinesUpdate cartMutationPayload `json:"cartLinesUpdate"`
	}{}
	err = cl.storefront(c, "cartLinesUpdate", cartLinesUpdateMutation, map[string]any{
		"cartId": cartID,
		"lines":  lines,
	}, &data)
	if err != nil {
		return cartapi.CartModification{}, err
	}

	return normalizeMutation("cartLinesUpdate", cartID, data.CartLinesUpdate)
}

func (cl *client) RemoveLines(c context.Context, cartID string, lineIDs []string) (cartapi.CartModification, error) {
	if cartID == "" {
		return cartapi.CartModification{}, myerrors.NewInvalidInputErrorf("cart id is required")
	}
	err := cartapi.ValidateLineIDs(lineIDs)
	if err != nil {
		return cartapi.CartModification{}, err
	}

	data := struct {
		CartLinesRemove cartMutationPayload `json:"cartLinesRemove"`
	}{}
	err = cl.storefront(c, "cartLinesRemove", cartLinesRemoveMutation, map[string]any{
		"cartId":  cartID,
		"lineIds": lineIDs,
	}, &data)
	if err != nil {
		return cartapi.CartModification{}, err
	}

	return normalizeMutation("cartLinesRemove", cartID, data.CartLinesRemove)
}

func (cl *client) GetCart(c context.Context, cartID string) (cartapi.Cart, bool, error) {
	data := struct {
		Cart *cartDetail `json:"cart"`
	}{}
	err := cl.storefront(c, "cart", cartQuery, map[string]any{"cartId": cartID}, &data)
	if err != nil {
		return cartapi.Cart{}, false, err
	}

	// An identifier that no longer resolves is a normal outcome, not a fault
	if data.Cart == nil {
		return cartapi.Cart{}, false, nil
	}

	return data.Cart.toCart(), true, nil
}

func (cl *client) GetProductByHandle(c context.Context, handle string) (cartapi.Product, bool, error) {
	product, found, err := cl.productFromStorefront(c, handle)
	if err != nil {
		var transportErr *TransportError
		if errors.As(err, &transportErr) && cl.adminToken != "" {
			cl.logger.Log(c, handle, mylog.SeverityWarn, "Storefront product lookup failed, falling back to admin API: %s", err)
			return cl.productFromAdmin(c, handle)
		}
		return cartapi.Product{}, false, err
	}

	return product, found, nil
}

func (cl *client) storefront(c context.Context, operation string, query string, variables map[string]any, out any) error {
	headers := map[string]string{}
	if cl.storefrontToken != "" {
		headers["X-Shopify-Storefront-Access-Token"] = cl.storefrontToken
	}
	if ip := buyerIPFromContext(c); ip != "" {
		headers["Shopify-Storefront-Buyer-IP"] = ip
	}

	return cl.execute(c, cl.storefrontURL, headers, operation, query, variables, out)
}

func (cl *client) admin(c context.Context, operation string, query string, variables map[string]any, out any) error {
	headers := map[string]string{
		"X-Shopify-Access-Token": cl.adminToken,
	}

	return cl.execute(c, cl.adminURL, headers, operation, query, variables, out)
}

func (cl *client) execute(c context.Context, endpoint string, headers map[string]string, operation string, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return &TransportError{Operation: operation, Err: err}
	}

	status, respPayload, err := cl.sender.Send(c, http.MethodPost, endpoint, headers, body)
	if err != nil {
		return &TransportError{Operation: operation, Err: err}
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &TransportError{Operation: operation, Err: fmt.Errorf("http status %d", status)}
	}

	resp := graphQLResponse{}
	err = json.Unmarshal(respPayload, &resp)
	if err != nil {
		return &TransportError{Operation: operation, Err: fmt.Errorf("malformed payload: %s", err)}
	}
	if len(resp.Errors) > 0 {
		return &TransportError{Operation: operation, Err: fmt.Errorf("graphql: %s", resp.Errors[0].Message)}
	}

	err = json.Unmarshal(resp.Data, out)
	if err != nil {
		return &TransportError{Operation: operation, Err: fmt.Errorf("malformed payload: %s", err)}
	}

	return nil
}

func normalizeMutation(operation string, cartID string, payload cartMutationPayload) (cartapi.CartModification, error) {
	if len(payload.UserErrors) > 0 {
		messages := make([]string, 0, len(payload.UserErrors))
		for _, ue := range payload.UserErrors {
			messages = append(messages, ue.Message)
		}
		return cartapi.CartModification{}, &BackendRejectedError{Messages: messages}
	}

	if payload.Cart == nil {
		if cartID != "" {
			return cartapi.CartModification{}, &InvalidCartError{CartID: cartID}
		}
		return cartapi.CartModification{}, &TransportError{Operation: operation, Err: fmt.Errorf("no cart in response")}
	}

	return cartapi.CartModification{
		CartID:        payload.Cart.ID,
		CheckoutURL:   payload.Cart.CheckoutURL,
		TotalQuantity: payload.Cart.TotalQuantity,
	}, nil
}

func toLineInputs(lines []cartapi.LineItem) []lineInput {
	result := make([]lineInput, 0, len(lines))
	for _, line := range lines {
		result = append(result, lineInput{
			MerchandiseID: line.MerchandiseID,
			Quantity:      line.Quantity,
			SellingPlanID: line.SellingPlanID,
		})
	}
	return result
}
