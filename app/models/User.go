package models

type LoginDto struct {
	Name string `json:"name"`
}
