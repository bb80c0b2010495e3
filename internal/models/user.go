package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a shop customer account. Email is the natural key for the
// sign-in and profile updates; nothing enforces its uniqueness.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo          string             `bson:"photo,omitempty" json:"photo,omitempty"`
	LastSignInTime string             `bson:"lastSignInTime,omitempty" json:"lastSignInTime,omitempty"`
}

// NewUser is the POST /users body.
type NewUser struct {
	Email          string `json:"email" binding:"omitempty,email"`
	Name           string `json:"name"`
	Photo          string `json:"photo"`
	LastSignInTime string `json:"lastSignInTime"`
}

// User converts the request into a document without an identifier.
func (n NewUser) User() *User {
	return &User{Email: n.Email, Name: n.Name, Photo: n.Photo, LastSignInTime: n.LastSignInTime}
}

// SignIn is the PATCH /users/signin body.
type SignIn struct {
	Email          string  `json:"email" binding:"required,email"`
	LastSignInTime *string `json:"lastSignInTime"`
}

// Profile is the PATCH /users/profile body.
type Profile struct {
	Email string  `json:"email" binding:"required,email"`
	Name  *string `json:"name"`
	Photo *string `json:"photo"`
}
