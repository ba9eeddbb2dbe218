package client

import (
	"context"

	"ecommerce_back_end/internal/models"
)

// State : l'application n'a que deux états. Il n'existe pas de
// transition de déconnexion, et rien ne survit à un redémarrage.
type State int

const (
	SignedOut State = iota
	SignedIn
)

// DisplayProduct : entrée de la liste affichée, avec son identifiant
// numérique propre au client.
type DisplayProduct struct {
	ProductID int
	Name      string
	Price     float64
	Image     string
}

// displayCatalog est la liste de produits réellement affichée, figée
// côté client et déconnectée du catalogue renvoyé par l'API.
// TODO: brancher l'affichage sur le catalogue chargé par LoadCatalog
// (les données sont déjà en Session.catalog) dès que le produit tranche.
var displayCatalog = []DisplayProduct{
	{ProductID: 1, Name: "Apple", Price: 1.2, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcT5Dz7-XilV0DK4h05_jPJkesswadW5b_KikQ&s"},
	{ProductID: 2, Name: "Grape", Price: 2.5, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcQfambS60vTU5yzVsYsw0UgKi96DXJv0qJDuQ&s"},
	{ProductID: 3, Name: "Banana", Price: 0.5, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSgJhPGUzTP_ds8vnDK3pzL0UUZM-Y1TEZKPg&s"},
	{ProductID: 4, Name: "Guava", Price: 1.8, Image: "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcTICQ_bjPqgE2Wa4E8DMzSvW5xww0wd-M3oJA&s"},
}

// Session porte tout l'état volatile de l'interface : drapeau de
// connexion, identifiant utilisateur, panier et catalogue chargé.
// Non sûre pour un usage concurrent, comme l'état d'une page.
type Session struct {
	api *Client

	state    State
	username string
	userID   int
	cart     []models.CartItem
	catalog  []models.Product
}

func NewSession(api *Client) *Session {
	return &Session{
		api:  api,
		cart: []models.CartItem{},
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) Username() string { return s.username }

func (s *Session) UserID() int { return s.userID }

func (s *Session) CartItems() []models.CartItem { return s.cart }

// DisplayProducts renvoie la liste affichée à l'utilisateur connecté.
func (s *Session) DisplayProducts() []DisplayProduct { return displayCatalog }

// Catalog renvoie le catalogue chargé depuis le backend.
func (s *Session) Catalog() []models.Product { return s.catalog }

// LoadCatalog récupère le catalogue et le garde en mémoire. La liste
// affichée n'en dépend pas (voir displayCatalog).
func (s *Session) LoadCatalog(ctx context.Context) error {
	products, err := s.api.Products(ctx)
	if err != nil {
		return err
	}
	s.catalog = products
	return nil
}

// SignUp crée le compte. En cas de succès la session reste SignedOut :
// l'utilisateur doit repasser par le formulaire de connexion.
func (s *Session) SignUp(ctx context.Context, username, password string) error {
	return s.api.SignUp(ctx, Credentials{Username: username, Password: password})
}

// SignIn est la seule transition SignedOut → SignedIn. Le panier
// serveur est rechargé dans la foulée.
func (s *Session) SignIn(ctx context.Context, username, password string) error {
	userID, err := s.api.Login(ctx, Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}

	s.state = SignedIn
	s.userID = userID
	s.username = username
	return s.RefreshCart(ctx)
}

func (s *Session) RefreshCart(ctx context.Context) error {
	items, err := s.api.Cart(ctx, s.userID)
	if err != nil {
		return err
	}
	s.cart = items
	return nil
}

// AddToCart pousse l'article et remplace le panier local par la
// réponse du serveur.
func (s *Session) AddToCart(ctx context.Context, item AddItemRequest) error {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	items, err := s.api.AddToCart(ctx, s.userID, item)
	if err != nil {
		return err
	}
	s.cart = items
	return nil
}

func (s *Session) RemoveFromCart(ctx context.Context, productID string) error {
	items, err := s.api.RemoveFromCart(ctx, s.userID, productID)
	if err != nil {
		return err
	}
	s.cart = items
	return nil
}

// Checkout soumet le formulaire de paiement avec le panier courant,
// puis vide le panier local uniquement : le document panier côté
// serveur n'est ni supprimé ni référencé.
func (s *Session) Checkout(ctx context.Context, name, address, pincode, mobileNumber string) error {
	err := s.api.Pay(ctx, PaymentRequest{
		Name:         name,
		Address:      address,
		Pincode:      pincode,
		MobileNumber: mobileNumber,
		CartItems:    s.cart,
	})
	if err != nil {
		return err
	}

	s.cart = []models.CartItem{}
	return nil
}
