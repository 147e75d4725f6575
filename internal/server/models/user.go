// Package models holds the domain records shared by the server layers.
package models

// User is a registered person. The ID is chosen by the caller, not the server.
type User struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Age  uint8  `json:"age"`
}

// SeedUser is the record every fresh collection starts with.
var SeedUser = User{ID: 1, Name: "GTS", Age: 17}
