// Package client est le pendant Go de l'application navigateur :
// un client REST typé vers le backend, et une Session qui porte tout
// l'état volatile (connexion, panier, catalogue). Rien n'est persisté.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ecommerce_back_end/internal/models"
)

// APIError porte le statut HTTP et le message renvoyés par le backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PaymentRequest reprend le formulaire de paiement tel que l'envoie le
// navigateur : le panier part avec, même si le serveur ne le garde pas.
type PaymentRequest struct {
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	Pincode      string            `json:"pincode"`
	MobileNumber string            `json:"mobileNumber"`
	CartItems    []models.CartItem `json:"cartItems"`
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Cart(ctx context.Context, userID int) ([]models.CartItem, error) {
	var items []models.CartItem
	path := fmt.Sprintf("/api/cart/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddToCart(ctx context.Context, userID int, item AddItemRequest) ([]models.CartItem, error) {
	var items []models.CartItem
	path := fmt.Sprintf("/api/cart/%d", userID)
	if err := c.do(ctx, http.MethodPost, path, item, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) RemoveFromCart(ctx context.Context, userID int, productID string) ([]models.CartItem, error) {
	var items []models.CartItem
	path := fmt.Sprintf("/api/cart/%d/%s", userID, productID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) SignUp(ctx context.Context, creds Credentials) error {
	return c.do(ctx, http.MethodPost, "/api/signup", creds, nil)
}

func (c *Client) Login(ctx context.Context, creds Credentials) (int, error) {
	var result struct {
		UserID int `json:"userId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, &result); err != nil {
		return 0, err
	}
	return result.UserID, nil
}

func (c *Client) Pay(ctx context.Context, payment PaymentRequest) error {
	return c.do(ctx, http.MethodPost, "/api/payment", payment, nil)
}

// do émet la requête et décode la réponse. Les statuts non-2xx sont
// convertis en *APIError avec le message renvoyé par le serveur.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Error
		if msg == "" {
			msg = apiErr.Message
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
