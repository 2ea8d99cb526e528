package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const ordersURL = "http://localhost:8080/orders"

type dimensions struct {
	Length int `json:"length,omitempty"`
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

type orderLine struct {
	ProductID  string     `json:"product_id"`
	Quantity   int        `json:"quantity"`
	Finish     string     `json:"finish,omitempty"`
	Dimensions dimensions `json:"dimensions"`
}

type checkout struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Phone     string      `json:"phone"`
	Region    string      `json:"region"`
	Lines     []orderLine `json:"lines"`
}

var (
	firstNames = []string{"Amel", "Yacine", "Lina", "Karim", "Nadia", "Sofiane"}
	lastNames  = []string{"Bensalem", "Haddad", "Cherif", "Mansouri", "Ziani"}
	regions    = []string{"alger", "blida", "oran", "constantine", "setif", "unknown"}
	finishes   = []string{"", "natural", "light", "dark"}

	// Seeded catalog ids, a couple of bogus ones mixed in to exercise the
	// not-found path.
	productIDs = []string{"prod-1", "prod-2", "prod-3", "prod-4", "prod-5", "missing-1"}
)

func randomCheckout() checkout {
	lines := make([]orderLine, 0, 3)
	for range 1 + rand.Intn(3) {
		line := orderLine{
			ProductID: productIDs[rand.Intn(len(productIDs))],
			Quantity:  1 + rand.Intn(3),
			Finish:    finishes[rand.Intn(len(finishes))],
		}
		if rand.Intn(2) == 0 {
			line.Dimensions = dimensions{
				Length: 30 + rand.Intn(370),
				Width:  30 + rand.Intn(370),
				Height: 30 + rand.Intn(370),
			}
		}
		lines = append(lines, line)
	}

	return checkout{
		FirstName: firstNames[rand.Intn(len(firstNames))],
		LastName:  lastNames[rand.Intn(len(lastNames))],
		Phone:     fmt.Sprintf("05%08d", rand.Intn(100000000)),
		Region:    regions[rand.Intn(len(regions))],
		Lines:     lines,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			body, _ := json.Marshal(randomCheckout())
			resp, err := http.Post(ordersURL, "application/json", bytes.NewReader(body))
			if err != nil {
				log.Println("checkout failed:", err)
				continue
			}
			log.Println("POST /orders ->", resp.Status)
			resp.Body.Close()
		case <-ctx.Done():
			return
		}
	}
}
