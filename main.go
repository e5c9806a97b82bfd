package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scottygfc67/pearlperfect-website/config"
	"github.com/scottygfc67/pearlperfect-website/lib/myhttpclient"
	"github.com/scottygfc67/pearlperfect-website/lib/mypublisher"
	"github.com/scottygfc67/pearlperfect-website/lib/mypubsub"
	"github.com/scottygfc67/pearlperfect-website/lib/myqueue"
	"github.com/scottygfc67/pearlperfect-website/lib/mystore"
	"github.com/scottygfc67/pearlperfect-website/lib/mytime"
	"github.com/scottygfc67/pearlperfect-website/lib/myuuid"
	"github.com/scottygfc67/pearlperfect-website/services/cart"
	"github.com/scottygfc67/pearlperfect-website/services/cartactivity"
	"github.com/scottygfc67/pearlperfect-website/services/cartid"
	"github.com/scottygfc67/pearlperfect-website/services/checkout"
	"github.com/scottygfc67/pearlperfect-website/services/mockcommerce"
	"github.com/scottygfc67/pearlperfect-website/services/products"
	"github.com/scottygfc67/pearlperfect-website/services/shopify"
)

func main() {
	c := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}

	router := mux.NewRouter()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup := createPublisher(c, router, pubsub)
	defer publisherCleanup()

	client := shopify.NewClient(cfg, myhttpclient.New())
	cartIDs := cartid.NewCookieStore(cfg.SecureCookies)

	cartService := cart.NewWebService(client, cartIDs, publisher)
	err = cartService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering cart service: %s", err)
	}

	checkoutService := checkout.NewWebService(client, cartIDs, checkout.NewPermalinkBuilder(cfg.StoreDomain))
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout service: %s", err)
	}

	productService := products.NewWebService(client)
	err = productService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering product service: %s", err)
	}

	activityCleanup := createCartActivity(c, router, pubsub)
	defer activityCleanup()

	mockCleanup := createMockCommerce(c, router)
	defer mockCleanup()

	startWebServerBlocking(router, cfg.Port)
}

func createPublisher(c context.Context, router *mux.Router, pubsub mypubsub.PubSub) (mypublisher.Publisher, func()) {
	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, mytime.RealNower{})
	if err != nil {
		log.Fatalf("Error creating event publisher: %s", err)
	}
	publisher.RegisterEndpoints(c, router)

	return publisher, func() {
		publisherCleanup()
		queueCleanup()
	}
}

func createCartActivity(c context.Context, router *mux.Router, pubsub mypubsub.PubSub) func() {
	activityStore, cleanup, err := mystore.New[cartactivity.CartActivity](c)
	if err != nil {
		log.Fatalf("Error creating cart activity store: %s", err)
	}

	activityService := cartactivity.NewWebService(activityStore, pubsub, mytime.RealNower{})
	err = activityService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering cart activity service: %s", err)
	}

	return cleanup
}

func createMockCommerce(c context.Context, router *mux.Router) func() {
	carts, cleanup, err := mystore.New[mockcommerce.MockCart](c)
	if err != nil {
		log.Fatalf("Error creating mock cart store: %s", err)
	}

	mockService := mockcommerce.NewWebService(carts, mytime.RealNower{}, myuuid.RealUUIDer{})
	err = mockService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering mock commerce service: %s", err)
	}

	return cleanup
}

func startWebServerBlocking(router *mux.Router, port string) {
	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
