package models

import "time"

// Payment : journal en écriture seule, sans lien vers l'utilisateur
// ni vers le panier qui l'a produit.
type Payment struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Pincode      string    `json:"pincode"`
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}
