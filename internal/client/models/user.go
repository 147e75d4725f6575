// Package models holds client-side view models.
package models

import "fmt"

// User is a user record as shown by the admin client.
type User struct {
	ID   uint32
	Name string
	Age  uint8
}

func (u User) String() string {
	return fmt.Sprintf("#%d %s (%d)", u.ID, u.Name, u.Age)
}
