package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"ecommerce_back_end/internal/client"
	"ecommerce_back_end/internal/handlers"
	"ecommerce_back_end/internal/models"
	"ecommerce_back_end/internal/repository"
	"ecommerce_back_end/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- Backend de test : vraies routes et vrais handlers, dépôts en mémoire ----

type stubProductRepo struct {
	products []models.Product
}

func (s *stubProductRepo) All(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubProductRepo) Seed(ctx context.Context, products []models.Product) error {
	s.products = append(s.products, products...)
	return nil
}

type stubCartRepo struct {
	carts map[string][]models.CartItem
}

func (s *stubCartRepo) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	items, ok := s.carts[userID]
	if !ok {
		return []models.CartItem{}, nil
	}
	return items, nil
}

func (s *stubCartRepo) AddItem(ctx context.Context, userID string, item models.CartItem) ([]models.CartItem, error) {
	s.carts[userID] = append(s.carts[userID], item)
	return s.Items(ctx, userID)
}

func (s *stubCartRepo) RemoveItem(ctx context.Context, userID string, productID primitive.ObjectID) ([]models.CartItem, error) {
	kept := []models.CartItem{}
	for _, item := range s.carts[userID] {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.carts[userID] = kept
	return kept, nil
}

type stubUserRepo struct {
	users  map[string]models.User
	nextID int
}

func (s *stubUserRepo) Create(ctx context.Context, username, passwordHash string) error {
	if _, exists := s.users[username]; exists {
		return repository.ErrDuplicateUsername
	}
	s.users[username] = models.User{ID: s.nextID, Username: username, Password: passwordHash}
	s.nextID++
	return nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

type stubPaymentRepo struct {
	recorded []models.Payment
}

func (s *stubPaymentRepo) Record(ctx context.Context, payment models.Payment) error {
	s.recorded = append(s.recorded, payment)
	return nil
}

// ---- Suite ----

type SessionSuite struct {
	suite.Suite
	server   *httptest.Server
	carts    *stubCartRepo
	payments *stubPaymentRepo
	session  *client.Session
	appleID  string
	grapeID  string
}

func (s *SessionSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	products := &stubProductRepo{}
	s.carts = &stubCartRepo{carts: map[string][]models.CartItem{}}
	users := &stubUserRepo{users: map[string]models.User{}, nextID: 1}
	s.payments = &stubPaymentRepo{}

	apple := models.Product{ID: primitive.NewObjectID(), Name: "Apple", Price: 1.2}
	grape := models.Product{ID: primitive.NewObjectID(), Name: "Grape", Price: 2.5}
	products.products = []models.Product{apple, grape}
	s.appleID = apple.ID.Hex()
	s.grapeID = grape.ID.Hex()

	r := gin.New()
	routes.RegisterRoutes(r, routes.Handlers{
		Products: handlers.NewProductHandler(products),
		Cart:     handlers.NewCartHandler(s.carts),
		Auth:     handlers.NewAuthHandler(users),
		Payment:  handlers.NewPaymentHandler(s.payments),
	})

	s.server = httptest.NewServer(r)
	s.session = client.NewSession(client.New(s.server.URL))
}

func (s *SessionSuite) TearDownTest() {
	s.server.Close()
}

func (s *SessionSuite) signIn() {
	ctx := context.Background()
	s.Require().NoError(s.session.SignUp(ctx, "alice", "pw1"))
	s.Require().NoError(s.session.SignIn(ctx, "alice", "pw1"))
}

func (s *SessionSuite) TestSignUpLeavesSessionSignedOut() {
	ctx := context.Background()

	s.Require().NoError(s.session.SignUp(ctx, "alice", "pw1"))
	s.Equal(client.SignedOut, s.session.State())
}

func (s *SessionSuite) TestSignUpDuplicate() {
	ctx := context.Background()

	s.Require().NoError(s.session.SignUp(ctx, "alice", "pw1"))
	err := s.session.SignUp(ctx, "alice", "pw2")

	var apiErr *client.APIError
	s.Require().True(errors.As(err, &apiErr), "expected *APIError, got %v", err)
	s.Equal(400, apiErr.Status)
}

func (s *SessionSuite) TestSignInBadCredentials() {
	ctx := context.Background()
	s.Require().NoError(s.session.SignUp(ctx, "alice", "pw1"))

	err := s.session.SignIn(ctx, "alice", "mauvais")

	var apiErr *client.APIError
	s.Require().True(errors.As(err, &apiErr), "expected *APIError, got %v", err)
	s.Equal(401, apiErr.Status)
	s.Equal(client.SignedOut, s.session.State())
}

func (s *SessionSuite) TestSignInSuccess() {
	s.signIn()

	s.Equal(client.SignedIn, s.session.State())
	s.Equal(1, s.session.UserID())
	s.Equal("alice", s.session.Username())
	s.Empty(s.session.CartItems())
}

func (s *SessionSuite) TestDisplayListIndependentOfCatalog() {
	ctx := context.Background()
	s.signIn()

	s.Require().NoError(s.session.LoadCatalog(ctx))
	s.Len(s.session.Catalog(), 2)

	// La liste affichée reste la liste figée côté client.
	display := s.session.DisplayProducts()
	s.Len(display, 4)
	s.Equal("Apple", display[0].Name)
}

func (s *SessionSuite) TestCartFlow() {
	ctx := context.Background()
	s.signIn()

	// Ajout puis relecture : mêmes productId, name et price.
	err := s.session.AddToCart(ctx, client.AddItemRequest{ProductID: s.appleID, Name: "Apple", Price: 1.2})
	s.Require().NoError(err)
	s.Require().Len(s.session.CartItems(), 1)
	s.Equal(s.appleID, s.session.CartItems()[0].ProductID.Hex())
	s.Equal("Apple", s.session.CartItems()[0].Name)
	s.Equal(1.2, s.session.CartItems()[0].Price)

	// Deuxième ajout du même produit : deux entrées, pas de fusion.
	err = s.session.AddToCart(ctx, client.AddItemRequest{ProductID: s.appleID, Name: "Apple", Price: 1.2})
	s.Require().NoError(err)
	s.Len(s.session.CartItems(), 2)

	err = s.session.AddToCart(ctx, client.AddItemRequest{ProductID: s.grapeID, Name: "Grape", Price: 2.5})
	s.Require().NoError(err)
	s.Len(s.session.CartItems(), 3)

	// La suppression retire toutes les entrées du produit visé.
	s.Require().NoError(s.session.RemoveFromCart(ctx, s.appleID))
	s.Require().Len(s.session.CartItems(), 1)
	s.Equal("Grape", s.session.CartItems()[0].Name)
}

func (s *SessionSuite) TestCheckoutClearsLocalCartOnly() {
	ctx := context.Background()
	s.signIn()

	err := s.session.AddToCart(ctx, client.AddItemRequest{ProductID: s.appleID, Name: "Apple", Price: 1.2})
	s.Require().NoError(err)

	err = s.session.Checkout(ctx, "Alice", "1 rue des Lilas", "75011", "0601020304")
	s.Require().NoError(err)

	// Panier local vidé, paiement journalisé.
	s.Empty(s.session.CartItems())
	s.Require().Len(s.payments.recorded, 1)
	s.Equal("Alice", s.payments.recorded[0].Name)

	// Le document panier côté serveur, lui, survit au paiement.
	serverItems, err := s.carts.Items(ctx, "1")
	s.Require().NoError(err)
	s.Len(serverItems, 1)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}
