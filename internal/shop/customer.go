package shop

import "fmt"

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c Customer) Info() string {
	return fmt.Sprintf("Клиент: %s (%s)", c.Name, c.Email)
}
